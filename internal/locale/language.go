// Package locale отвечает за язык пользовательского вывода, стили статусных слов
// и каталог сообщений на японском и английском.
package locale

import "golang.org/x/text/language"

// Language Язык пользовательского вывода.
type Language int

const (
	Japanese Language = iota
	English
)

// Default Язык по умолчанию в зависимости от переключателя сборки english.
func Default(english bool) Language {
	if english {
		return English
	}

	return Japanese
}

// Opposite Второй из двух поддерживаемых языков.
func (l Language) Opposite() Language {
	if l == English {
		return Japanese
	}

	return English
}

// Flip Переключает язык count раз: нечётное количество даёт противоположный язык,
// чётное - исходный.
func Flip(def Language, count int) Language {
	if count%2 == 1 {
		return def.Opposite()
	}

	return def
}

// Tag BCP 47 тег языка для каталога сообщений.
func (l Language) Tag() language.Tag {
	if l == English {
		return language.English
	}

	return language.Japanese
}

func (l Language) String() string {
	return l.Tag().String()
}
