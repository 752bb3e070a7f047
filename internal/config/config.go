package config

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/trsv-dev/happy-server/internal/errs"
	"github.com/trsv-dev/happy-server/internal/features"
	"github.com/trsv-dev/happy-server/internal/locale"
)

const (
	AppName         = "happy_server"
	DefaultLogLevel = "error"
)

// Version Версия бинарника, подставляется через -ldflags "-X .../config.Version=...".
var Version = "0.1.0"

// RawOptions Сырые значения командной строки. Проверка выполняется позже, в resolver.
// nil в строковых полях означает, что флаг не передавался.
type RawOptions struct {
	Port      *string
	DistDir   *string
	URIPrefix *string
	// FlipLanguage Сколько раз передан флаг смены языка.
	FlipLanguage int
	// ColorOverride Передан флаг, меняющий стиль по умолчанию (--color или --no_color).
	ColorOverride bool
	// ClipboardOverride Передан --no_clipboard.
	ClipboardOverride bool

	LogLevel  string
	LogOutput string
}

// Parse Разбирает аргументы командной строки в RawOptions.
// Справка выводится на языке сборки, переключённом флагом языка, если он есть в args.
// --help и --version возвращают ExitError с кодом ExitOK, ошибки разбора - ExitUsage.
func Parse(args []string, feats features.Set, out, errOut io.Writer) (RawOptions, error) {
	if args == nil {
		// cobra при nil берёт os.Args
		args = []string{}
	}

	lang := locale.Flip(locale.Default(feats.DefaultEnglish()), prescanFlip(args, feats))

	var raw RawOptions
	ran := false

	cmd := NewCommand(lang, feats, &raw, func() { ran = true })
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	if err := cmd.Execute(); err != nil {
		p := locale.Printer(lang)
		fmt.Fprintln(errOut, p.Sprintf(locale.KeyUsageError, "Error", err.Error(), "Note", AppName))

		return RawOptions{}, errs.NewExitError(errs.ExitUsage, err)
	}

	if !ran {
		// cobra уже вывела справку или версию
		return RawOptions{}, errs.NewExitError(errs.ExitOK, nil)
	}

	return raw, nil
}

// NewCommand Собирает cobra-команду с набором флагов, зависящим от переключателей сборки.
// Регистрируется только тот флаг языка/цвета, который меняет значение по умолчанию.
func NewCommand(lang locale.Language, feats features.Set, raw *RawOptions, onRun func()) *cobra.Command {
	p := locale.Printer(lang)

	var port, distDir, uriPrefix string

	cmd := &cobra.Command{
		Use:           AppName,
		Short:         p.Sprintf(locale.KeyCmdShort),
		Long:          p.Sprintf(locale.KeyCmdLong),
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if flags.Changed("port") {
				raw.Port = &port
			}
			if flags.Changed("dist_dir") {
				raw.DistDir = &distDir
			}
			if flags.Changed("uri_prefix") {
				raw.URIPrefix = &uriPrefix
			}

			if onRun != nil {
				onRun()
			}

			return nil
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	f := cmd.Flags()
	f.SortFlags = false

	f.StringVarP(&port, "port", "p", "", p.Sprintf(locale.KeyFlagPort))
	f.StringVarP(&distDir, "dist_dir", "d", "", p.Sprintf(locale.KeyFlagDistDir))
	f.StringVarP(&uriPrefix, "uri_prefix", "u", "", p.Sprintf(locale.KeyFlagURIPrefix))

	if feats.DefaultEnglish() {
		f.CountVarP(&raw.FlipLanguage, "japanese", "j", p.Sprintf(locale.KeyFlagJapanese))
	} else {
		f.CountVarP(&raw.FlipLanguage, "english", "e", p.Sprintf(locale.KeyFlagEnglish))
	}

	if feats.DefaultStyled() {
		f.BoolVar(&raw.ColorOverride, "no_color", false, p.Sprintf(locale.KeyFlagNoColor))
	} else {
		f.BoolVarP(&raw.ColorOverride, "color", "c", false, p.Sprintf(locale.KeyFlagColor))
	}

	if feats.ClipboardEnabled() {
		f.BoolVar(&raw.ClipboardOverride, "no_clipboard", false, p.Sprintf(locale.KeyFlagNoClipbrd))
	}

	f.StringVar(&raw.LogLevel, "log_level", DefaultLogLevel, p.Sprintf(locale.KeyFlagLogLevel))
	f.StringVar(&raw.LogOutput, "log_file", "", p.Sprintf(locale.KeyFlagLogFile))

	f.BoolP("help", "h", false, p.Sprintf(locale.KeyFlagHelp))
	f.BoolP("version", "v", false, p.Sprintf(locale.KeyFlagVersion))

	cmd.SetUsageTemplate(p.Sprintf(locale.KeyUsageTemplate))
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	return cmd
}

// prescanFlip Считает флаги смены языка до разбора, чтобы справка была на нужном языке.
// Учитываются только отдельные токены, склеенные короткие флаги (-ep) игнорируются.
func prescanFlip(args []string, feats features.Set) int {
	long, short := "--english", "-e"
	if feats.DefaultEnglish() {
		long, short = "--japanese", "-j"
	}

	n := 0
	for _, a := range args {
		if a == "--" {
			break
		}
		if a == long || a == short {
			n++
		}
	}

	return n
}
