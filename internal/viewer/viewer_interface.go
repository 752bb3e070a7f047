package viewer

import "github.com/trsv-dev/happy-server/internal/models"

//go:generate mockgen -destination=mocks/mock_viewer.go -package=mocks . Viewer,Clipboard

// Viewer Интерфейс вывода всех результатов работы пользователю.
// Позволяет подключить другой фронтенд (например, web API) к тому же resolver.
type Viewer interface {
	// RenderResolution Выводит по абзацу на каждое поле с ошибкой в порядке
	// port, dist_dir, uri_prefix и возвращает эти абзацы.
	RenderResolution(pre models.PreModel) ([]string, error)
	// RenderServerStart Выводит результат старта сервера. startErr == nil - сервер запущен.
	RenderServerStart(startErr error, plan models.BuildPlan) error
	// RenderServerStop Выводит сообщение об окончании раздачи.
	RenderServerStop() error
}

// Clipboard Интерфейс системного буфера обмена.
type Clipboard interface {
	WriteAll(text string) error
}
