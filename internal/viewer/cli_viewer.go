// Package viewer отображает результаты проверки параметров, старта и остановки
// сервера в виде локализованного текста и при необходимости копирует URL
// в буфер обмена.
package viewer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/trsv-dev/happy-server/internal/locale"
	"github.com/trsv-dev/happy-server/internal/logger"
	"github.com/trsv-dev/happy-server/internal/models"
	"golang.org/x/text/message"
)

var errClipboardUnsupported = errors.New("буфер обмена не поддерживается в этой системе")

// CLIViewer Viewer, пишущий UTF-8 текст в переданный поток.
type CLIViewer struct {
	out       io.Writer
	language  locale.Language
	style     locale.StyleTags
	intent    models.ClipboardIntent
	clipboard Clipboard
	printer   *message.Printer
}

// NewCLIViewer Конструктор. clipboard может быть nil, если intent != ClipboardCopy.
func NewCLIViewer(out io.Writer, lang locale.Language, style locale.StyleTags, intent models.ClipboardIntent, clipboard Clipboard) *CLIViewer {
	return &CLIViewer{
		out:       out,
		language:  lang,
		style:     style,
		intent:    intent,
		clipboard: clipboard,
		printer:   locale.Printer(lang),
	}
}

// RenderResolution Выводит абзацы ошибок проверки. Успешные поля ничего не выводят.
func (v *CLIViewer) RenderResolution(pre models.PreModel) ([]string, error) {
	var paragraphs []string

	if !pre.Port.Value.OK() {
		paragraphs = append(paragraphs, v.printer.Sprintf(locale.KeyPortInvalid,
			v.style.Error, v.style.Note, v.style.Note, strconv.Itoa(int(models.DefaultHTTPPort))))
	}

	if !pre.DistDir.Value.OK() {
		// формулировка зависит от того, откуда взят путь
		key := locale.KeyDistDirMalformed
		if pre.DistDir.IsDefault() {
			key = locale.KeyCwdUnavailable
		}
		paragraphs = append(paragraphs, v.printer.Sprintf(key, v.style.Error, v.style.Note))
	}

	if !pre.URIPrefix.Value.OK() {
		paragraphs = append(paragraphs, v.printer.Sprintf(locale.KeyURIPrefixInvalid, v.style.Error, v.style.Note))
	}

	for _, p := range paragraphs {
		if _, err := fmt.Fprintln(v.out, p); err != nil {
			return paragraphs, err
		}
	}

	return paragraphs, nil
}

// RenderServerStart Выводит результат запуска сервера. При успехе копирует URL
// в буфер обмена; сбой буфера обмена не выводится пользователю.
func (v *CLIViewer) RenderServerStart(startErr error, plan models.BuildPlan) error {
	if startErr != nil {
		logger.Log.Debug("Сервер не запущен", logger.Err(startErr))

		_, err := fmt.Fprintln(v.out, v.printer.Sprintf(locale.KeyStartFailed, v.style.Error, plan.Scheme()))
		return err
	}

	url := BrowseURL(plan)

	var b strings.Builder
	b.WriteString(v.printer.Sprintf(locale.KeyRunning, v.style.Running, plan.DistDir, plan.Scheme(), url))
	b.WriteString("\n")

	if v.copyToClipboard(url) {
		b.WriteString(v.printer.Sprintf(locale.KeyCopied, v.style.Copied))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.printer.Sprintf(locale.KeyHowToExit))
	b.WriteString("\n")

	_, err := io.WriteString(v.out, b.String())
	return err
}

// RenderServerStop Выводит сообщение об окончании раздачи.
func (v *CLIViewer) RenderServerStop() error {
	_, err := fmt.Fprintln(v.out, v.printer.Sprintf(locale.KeyFinished, v.style.Finish))
	return err
}

// copyToClipboard Копирует URL, если это разрешено. Ошибки только логируются.
func (v *CLIViewer) copyToClipboard(url string) bool {
	if v.intent != models.ClipboardCopy || v.clipboard == nil {
		return false
	}

	if err := v.clipboard.WriteAll(url); err != nil {
		logger.Log.Debug("Не удалось скопировать URL в буфер обмена", logger.String("url", url), logger.Err(err))
		return false
	}

	return true
}

// BrowseURL Собирает адрес для браузера: scheme://localhost[:port][/uri_prefix].
// Порт опускается, если он совпадает с портом схемы по умолчанию.
func BrowseURL(plan models.BuildPlan) string {
	var b strings.Builder

	b.WriteString(plan.Scheme())
	b.WriteString("://localhost")

	if plan.Port() != plan.DefaultPort() {
		b.WriteString(":")
		b.WriteString(strconv.Itoa(int(plan.Port())))
	}

	if plan.URIPrefix != "" {
		b.WriteString("/")
		b.WriteString(plan.URIPrefix)
	}

	return b.String()
}
