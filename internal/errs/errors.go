package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPath Путь к каталогу раздачи передан пустой строкой.
	ErrEmptyPath = errors.New("путь пустой")
	// ErrNulInPath Путь содержит NUL-байт и не может быть передан ОС.
	ErrNulInPath = errors.New("путь содержит NUL-байт")
	// ErrPrefixLeadingSlash Префикс URI начинается с "/".
	ErrPrefixLeadingSlash = errors.New(`префикс начинается с "/"`)
	// ErrPrefixDoubleSlash Префикс URI содержит "//".
	ErrPrefixDoubleSlash = errors.New(`префикс содержит "//"`)
)

// ErrPortParse Кастомная ошибка, сообщающая, что порт не является числом 0-65535.
type ErrPortParse struct {
	Input string
	Err   error
}

func (pp *ErrPortParse) Error() string {
	return fmt.Sprintf("Некорректный порт `%s`. Ошибка: %v", pp.Input, pp.Err)
}

func (pp *ErrPortParse) Unwrap() error {
	return pp.Err
}

func NewErrPortParse(input string, err error) *ErrPortParse {
	return &ErrPortParse{
		Input: input,
		Err:   err,
	}
}

// ErrDistDir Кастомная ошибка, сообщающая, что каталог раздачи не удалось определить.
// Input пустой, если путь брался из текущего каталога процесса.
type ErrDistDir struct {
	Input string
	Err   error
}

func (dd *ErrDistDir) Error() string {
	if dd.Input == "" {
		return fmt.Sprintf("Не удалось определить текущий каталог. Ошибка: %v", dd.Err)
	}

	return fmt.Sprintf("Некорректный путь каталога раздачи `%s`. Ошибка: %v", dd.Input, dd.Err)
}

func (dd *ErrDistDir) Unwrap() error {
	return dd.Err
}

func NewErrDistDir(input string, err error) *ErrDistDir {
	return &ErrDistDir{
		Input: input,
		Err:   err,
	}
}

// ErrURIPrefix Кастомная ошибка, сообщающая о недопустимом префиксе URI.
type ErrURIPrefix struct {
	Input string
	Err   error
}

func (up *ErrURIPrefix) Error() string {
	return fmt.Sprintf("Недопустимый префикс URI `%s`. Ошибка: %v", up.Input, up.Err)
}

func (up *ErrURIPrefix) Unwrap() error {
	return up.Err
}

func NewErrURIPrefix(input string, err error) *ErrURIPrefix {
	return &ErrURIPrefix{
		Input: input,
		Err:   err,
	}
}
