package router

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router Роутер раздачи каталога distDir под префиксом uriPrefix.
func Router(distDir string, uriPrefix string) chi.Router {
	router := chi.NewRouter()

	// паника в обработчике не должна ронять процесс
	router.Use(middleware.Recoverer)
	router.Use(middleware.CleanPath)

	// префикс сопоставляется буквально в StaticHandler,
	// поэтому пользовательский текст не попадает в шаблоны chi
	router.Handle("/*", NewStaticHandler(distDir, uriPrefix))

	return router
}

// StaticHandler Отдаёт файлы каталога с листингом директорий. Выход за пределы
// каталога невозможен: пути разрешаются через http.Dir.
type StaticHandler struct {
	base  string
	files http.Handler
}

// NewStaticHandler Конструктор. Пустой префикс - раздача из корня.
func NewStaticHandler(distDir string, uriPrefix string) *StaticHandler {
	files := http.FileServer(http.Dir(distDir))

	base := ""
	if p := strings.TrimSuffix(uriPrefix, "/"); p != "" {
		base = "/" + p
		files = http.StripPrefix(base, files)
	}

	return &StaticHandler{
		base:  base,
		files: files,
	}
}

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.base == "" {
		h.files.ServeHTTP(w, r)
		return
	}

	switch p := r.URL.Path; {
	case p == h.base:
		// /docs -> /docs/, иначе относительные ссылки листинга уйдут в корень
		target := h.base + "/"
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusMovedPermanently)
	case strings.HasPrefix(p, h.base+"/"):
		h.files.ServeHTTP(w, r)
	default:
		http.NotFound(w, r)
	}
}
