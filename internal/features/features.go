// Package features описывает переключатели, выбираемые при сборке через build-теги:
//
//	english       язык по умолчанию английский, регистрируется --japanese вместо --english
//	no_color      вывод без ANSI-цветов, регистрируется --color вместо --no_color
//	no_clipboard  URL не копируется в буфер обмена, --no_clipboard не регистрируется
//	no_ssl        TLS в плане сборки всегда пустой
//
// Пример: go build -tags "english no_clipboard" ./cmd/happyserver
package features

// Set Набор переключателей сборки. Вся логика полярности флагов собрана в методах Set.
type Set struct {
	English     bool
	NoColor     bool
	NoClipboard bool
	NoSSL       bool
}

// Compiled Возвращает набор, с которым собран бинарник.
func Compiled() Set {
	return Set{
		English:     english,
		NoColor:     noColor,
		NoClipboard: noClipboard,
		NoSSL:       noSSL,
	}
}

// DefaultEnglish Язык по умолчанию - английский.
func (s Set) DefaultEnglish() bool {
	return s.English
}

// DefaultStyled Цветной вывод по умолчанию.
func (s Set) DefaultStyled() bool {
	return !s.NoColor
}

// ClipboardEnabled Поддержка буфера обмена включена в сборку.
func (s Set) ClipboardEnabled() bool {
	return !s.NoClipboard
}

// TLSEnabled Поддержка TLS включена в сборку.
func (s Set) TLSEnabled() bool {
	return !s.NoSSL
}
