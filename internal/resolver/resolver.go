// Package resolver превращает сырые значения командной строки в проверенный план
// сборки сервера либо в отчёт об ошибках. Все поля проверяются независимо,
// чтобы пользователь увидел все ошибки за один запуск.
package resolver

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/trsv-dev/happy-server/internal/config"
	"github.com/trsv-dev/happy-server/internal/errs"
	"github.com/trsv-dev/happy-server/internal/features"
	"github.com/trsv-dev/happy-server/internal/locale"
	"github.com/trsv-dev/happy-server/internal/models"
)

// Env Доступ к окружению процесса.
type Env struct {
	Getwd func() (string, error)
}

// OSEnv Окружение текущего процесса.
func OSEnv() Env {
	return Env{Getwd: os.Getwd}
}

// ResolutionViewer Часть Viewer, которая отображает результат проверки.
// Возвращает отрисованные абзацы ошибок, error - только при сбое записи.
type ResolutionViewer interface {
	RenderResolution(pre models.PreModel) ([]string, error)
}

// Resolution Результат проверки всех полей до принятия решения план/отчёт.
type Resolution struct {
	Language  locale.Language
	Style     locale.StyleTags
	Clipboard models.ClipboardIntent
	PreModel  models.PreModel

	// TLS Материал для HTTPS. Командная строка его не заполняет, задаётся
	// встраивающим кодом; при сборке с no_ssl игнорируется.
	TLS        *models.TLSMaterial
	tlsEnabled bool
}

// Resolve Проверяет каждое поле независимо и никогда не останавливается на первой ошибке.
func Resolve(raw config.RawOptions, feats features.Set, env Env) Resolution {
	return Resolution{
		Language:   locale.Flip(locale.Default(feats.DefaultEnglish()), raw.FlipLanguage),
		Style:      locale.ChooseStyle(feats.DefaultStyled(), raw.ColorOverride),
		Clipboard:  clipboardIntent(feats, raw.ClipboardOverride),
		tlsEnabled: feats.TLSEnabled(),
		PreModel: models.PreModel{
			Port:      resolvePort(raw.Port),
			DistDir:   resolveDistDir(raw.DistDir, env),
			URIPrefix: resolveURIPrefix(raw.URIPrefix),
		},
	}
}

// Build Отдаёт PreModel на отрисовку и только потом решает, что вернуть:
// план сборки, если все поля корректны, иначе отчёт с теми же абзацами.
// error означает сбой записи пользовательского вывода.
func (r Resolution) Build(v ResolutionViewer) (models.BuildPlan, *models.ErrorReport, error) {
	paragraphs, err := v.RenderResolution(r.PreModel)
	if err != nil {
		return models.BuildPlan{}, nil, errs.NewErrRender(err)
	}

	if !r.PreModel.OK() {
		return models.BuildPlan{}, &models.ErrorReport{Paragraphs: paragraphs}, nil
	}

	pre := r.PreModel
	plan := models.NewBuildPlan(pre.Port.Value.Value, pre.DistDir.Value.Value, pre.URIPrefix.Value.Value)
	if r.tlsEnabled {
		plan.TLS = r.TLS
	}

	return plan, nil, nil
}

func resolvePort(raw *string) models.ParameterSource[models.Result[uint16]] {
	if raw == nil {
		return models.Default(models.Ok(models.DefaultHTTPPort))
	}

	port, err := strconv.ParseUint(*raw, 10, 16)
	if err != nil {
		return models.CliArg(models.Fail[uint16](errs.NewErrPortParse(*raw, err)))
	}

	return models.CliArg(models.Ok(uint16(port)))
}

func resolveDistDir(raw *string, env Env) models.ParameterSource[models.Result[string]] {
	if raw == nil {
		wd, err := env.Getwd()
		if err != nil {
			return models.Default(models.Fail[string](errs.NewErrDistDir("", err)))
		}

		return models.Default(models.Ok(wd))
	}

	path := *raw
	switch {
	case path == "":
		return models.CliArg(models.Fail[string](errs.NewErrDistDir(path, errs.ErrEmptyPath)))
	case strings.ContainsRune(path, 0):
		return models.CliArg(models.Fail[string](errs.NewErrDistDir(path, errs.ErrNulInPath)))
	}

	abs, err := absPath(path, env)
	if err != nil {
		return models.CliArg(models.Fail[string](errs.NewErrDistDir(path, err)))
	}

	return models.CliArg(models.Ok(abs))
}

// absPath filepath.Abs, но относительные пути достраиваются через Env.
func absPath(path string, env Env) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}

	wd, err := env.Getwd()
	if err != nil {
		return "", err
	}

	return filepath.Join(wd, path), nil
}

func resolveURIPrefix(raw *string) models.ParameterSource[models.Result[string]] {
	if raw == nil {
		return models.Default(models.Ok(""))
	}

	prefix := *raw
	if models.ValidURIPrefix(prefix) {
		return models.CliArg(models.Ok(prefix))
	}

	// причина нужна только для текста ошибки
	reason := errs.ErrPrefixDoubleSlash
	if strings.HasPrefix(prefix, "/") {
		reason = errs.ErrPrefixLeadingSlash
	}

	return models.CliArg(models.Fail[string](errs.NewErrURIPrefix(prefix, reason)))
}

func clipboardIntent(feats features.Set, override bool) models.ClipboardIntent {
	if !feats.ClipboardEnabled() {
		return models.ClipboardUnavailable
	}

	if override {
		return models.ClipboardSkip
	}

	return models.ClipboardCopy
}
