package models

// Source Происхождение значения параметра.
type Source string

const (
	SourceDefault Source = "default"
	SourceCliArg  Source = "cli_arg"
)

// String Стрингер для Source.
func (s Source) String() string {
	return string(s)
}

// Result Результат проверки одного поля: значение либо ошибка.
type Result[T any] struct {
	Value T
	Err   error
}

// Ok Успешный результат.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Fail Неуспешный результат.
func Fail[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

// OK Результат без ошибки.
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// ParameterSource Значение вместе с его происхождением. Происхождение влияет только
// на формулировку сообщения об ошибке.
type ParameterSource[T any] struct {
	Source Source
	Value  T
}

// Default Значение, взятое из умолчаний сборки или окружения.
func Default[T any](v T) ParameterSource[T] {
	return ParameterSource[T]{Source: SourceDefault, Value: v}
}

// CliArg Значение, переданное аргументом командной строки.
func CliArg[T any](v T) ParameterSource[T] {
	return ParameterSource[T]{Source: SourceCliArg, Value: v}
}

// IsDefault Значение взято из умолчаний.
func (p ParameterSource[T]) IsDefault() bool {
	return p.Source == SourceDefault
}
