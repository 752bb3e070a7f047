package errs

import (
	"errors"
	"fmt"
)

// Коды завершения процесса.
const (
	ExitOK     = 0
	ExitRender = 1
	ExitUsage  = 2
)

// ExitError Ошибка, требующая завершить процесс с указанным кодом.
// Code == ExitOK используется для --help и --version.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit %d", e.Code)
	}

	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func NewExitError(code int, err error) *ExitError {
	return &ExitError{
		Code: code,
		Err:  err,
	}
}

// ExitCode Извлекает код завершения из цепочки ошибок.
// nil - ExitOK, ErrRender - ExitRender, прочие ошибки - ExitUsage.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var renderErr *ErrRender
	if errors.As(err, &renderErr) {
		return ExitRender
	}

	return ExitUsage
}
