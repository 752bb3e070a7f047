package errs

import "fmt"

// ErrServerStart Кастомная ошибка, сообщающая, что HTTP-сервер не смог стартовать
// (порт занят, нет прав на порт, повреждённый TLS-материал).
type ErrServerStart struct {
	Address string
	Err     error
}

func (ss *ErrServerStart) Error() string {
	return fmt.Sprintf("Не удалось запустить сервер на %s. Ошибка: %v", ss.Address, ss.Err)
}

func (ss *ErrServerStart) Unwrap() error {
	return ss.Err
}

func NewErrServerStart(address string, err error) *ErrServerStart {
	return &ErrServerStart{
		Address: address,
		Err:     err,
	}
}

// ErrRender Кастомная ошибка записи пользовательского вывода. Фатальна для процесса.
type ErrRender struct {
	Err error
}

func (r *ErrRender) Error() string {
	return fmt.Sprintf("Не удалось вывести сообщение. Ошибка: %v", r.Err)
}

func (r *ErrRender) Unwrap() error {
	return r.Err
}

func NewErrRender(err error) *ErrRender {
	return &ErrRender{
		Err: err,
	}
}
