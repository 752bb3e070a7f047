package locale

import "github.com/fatih/color"

// StyleTags Заранее отрисованные статусные слова. После создания не меняется.
type StyleTags struct {
	Error   string
	Note    string
	Running string
	Finish  string
	Copied  string

	styled bool
}

// Styled Статусные слова с ANSI-цветом и жирным начертанием.
// Цвет включается принудительно, даже если stdout не терминал.
func Styled() StyleTags {
	return StyleTags{
		Error:   paint("Error", color.FgRed),
		Note:    paint("Note", color.FgBlue),
		Running: paint("Running", color.FgGreen),
		Finish:  paint("Finish", color.FgGreen),
		Copied:  paint("Copied", color.FgCyan),
		styled:  true,
	}
}

// Plain Статусные слова без оформления.
func Plain() StyleTags {
	return StyleTags{
		Error:   "Error",
		Note:    "Note",
		Running: "Running",
		Finish:  "Finish",
		Copied:  "Copied",
	}
}

// ChooseStyle Выбирает стиль: значение по умолчанию из сборки XOR флаг пользователя.
func ChooseStyle(defaultStyled, override bool) StyleTags {
	if defaultStyled != override {
		return Styled()
	}

	return Plain()
}

// IsStyled Создан ли набор конструктором Styled.
func (s StyleTags) IsStyled() bool {
	return s.styled
}

func paint(word string, attr color.Attribute) string {
	c := color.New(attr, color.Bold)
	c.EnableColor()

	return c.Sprint(word)
}
