package locale

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Ключи сообщений каталога.
const (
	KeyPortInvalid      = "resolve.port.invalid"
	KeyCwdUnavailable   = "resolve.dist_dir.cwd"
	KeyDistDirMalformed = "resolve.dist_dir.malformed"
	KeyURIPrefixInvalid = "resolve.uri_prefix.invalid"

	KeyStartFailed = "server.start.failed"
	KeyRunning     = "server.start.running"
	KeyCopied      = "server.start.copied"
	KeyHowToExit   = "server.start.exit"
	KeyFinished    = "server.stop.finished"

	KeyCmdShort      = "cli.short"
	KeyCmdLong       = "cli.long"
	KeyUsageTemplate = "cli.usage"
	KeyUsageError    = "cli.usage.error"
	KeyFlagPort      = "cli.flag.port"
	KeyFlagDistDir   = "cli.flag.dist_dir"
	KeyFlagURIPrefix = "cli.flag.uri_prefix"
	KeyFlagEnglish   = "cli.flag.english"
	KeyFlagJapanese  = "cli.flag.japanese"
	KeyFlagColor     = "cli.flag.color"
	KeyFlagNoColor   = "cli.flag.no_color"
	KeyFlagNoClipbrd = "cli.flag.no_clipboard"
	KeyFlagLogLevel  = "cli.flag.log_level"
	KeyFlagLogFile   = "cli.flag.log_file"
	KeyFlagHelp      = "cli.flag.help"
	KeyFlagVersion   = "cli.flag.version"
)

// entry Пара переводов одного сообщения.
type entry struct {
	ja string
	en string
}

var messages = map[string]entry{
	KeyPortInvalid: {
		ja: "%s: コマンドライン引数のポート番号に、数値以外が入っていました。\n" +
			"%s: 引数には0~65535までの数値を入れることができます。\n" +
			"%s: 引数を入れなければ、デフォルトポート: %s が利用されます。",
		en: "%s: The port number in the command line argument contained a non-numeric value.\n" +
			"%s: The argument can be any number between 0 and 65535.\n" +
			"%s: If no argument is given, the default port: %s will be used.",
	},
	KeyCwdUnavailable: {
		ja: "%s: カレントディレクトリを特定できませんでした。\n" +
			"%s: 別のディレクトリに移動してから、再度実行してください。",
		en: "%s: Could not locate the current directory.\n" +
			"%s: Change to another directory and try again.",
	},
	KeyDistDirMalformed: {
		ja: "%s: 配信ディレクトリパスのフォーマットが不正です。\n" +
			"%s: --dist_dir には配信するディレクトリのパスを指定してください。",
		en: "%s: The --dist_dir path is malformed.\n" +
			"%s: Pass the path of the directory to distribute to --dist_dir.",
	},
	KeyURIPrefixInvalid: {
		ja: "%s: URIプレフィックスの最初に\"/\"を入れられません。また、\"//\"を入れることができません。\n" +
			"%s: 例: --uri_prefix docs",
		en: "%s: The URI prefix must not start with \"/\" and must not contain \"//\".\n" +
			"%s: Example: --uri_prefix docs",
	},

	KeyStartFailed: {
		ja: "%s: ディレクトリを%sで配信できませんでした。",
		en: "%s: The directory could not be delivered via %s.",
	},
	KeyRunning: {
		ja: "%s: %s を%sで配信しています。\n%s にアクセスすればブラウズができます。",
		en: "%s: %s is served by %s!!\nYou can browse by visiting %s.",
	},
	KeyCopied: {
		ja: "%s: URLをクリップボードにコピーしました。",
		en: "%s: The URL has been copied to the clipboard.",
	},
	KeyHowToExit: {
		ja: "終了する場合は、Ctrl + C を押すか、このウィンドウを閉じてください。",
		en: "To exit, press Ctrl + C or close this window.",
	},
	KeyFinished: {
		ja: "%s: 配信を終了しました。",
		en: "%s: Distribution has been terminated.",
	},

	KeyCmdShort: {
		ja: "ディレクトリを即座にhttpで配信します。",
		en: "Deliver a directory over http immediately.",
	},
	KeyCmdLong: {
		ja: "カレントディレクトリ（または --dist_dir で指定したディレクトリ）を即座に配信します。\n" +
			"同じPCやLAN内のブラウザからファイルを閲覧・ダウンロードできます。",
		en: "Deliver the current directory (or the one given by --dist_dir) immediately.\n" +
			"Files can be browsed and downloaded from a browser on the same host or LAN.",
	},
	KeyUsageTemplate: {
		ja: "使い方:\n  {{.UseLine}}{{if .HasAvailableFlags}}\n\nオプション:\n" +
			"{{.Flags.FlagUsages | trimTrailingWhitespaces}}{{end}}\n",
		en: "Usage:\n  {{.UseLine}}{{if .HasAvailableFlags}}\n\nFlags:\n" +
			"{{.Flags.FlagUsages | trimTrailingWhitespaces}}{{end}}\n",
	},
	KeyUsageError: {
		ja: "%s: %s\n%s: 使い方は \"%s --help\" で確認できます。",
		en: "%s: %s\n%s: Run \"%s --help\" for usage.",
	},
	KeyFlagPort: {
		ja: "配信ポートの指定（デフォルト: 80）",
		en: "Specify the distribution port (default: 80)",
	},
	KeyFlagDistDir: {
		ja: "配信ディレクトリの指定（デフォルト: カレントディレクトリ）",
		en: "Specify the directory to distribute (default: current directory)",
	},
	KeyFlagURIPrefix: {
		ja: "URIプレフィックスの指定（例: docs）",
		en: "Specify the URI prefix files are served under (e.g. docs)",
	},
	KeyFlagEnglish: {
		ja: "標準出力を英語にします",
		en: "Standard output in English",
	},
	KeyFlagJapanese: {
		ja: "標準出力を日本語にします",
		en: "Standard output in Japanese",
	},
	KeyFlagColor: {
		ja: "標準出力に色を付けます",
		en: "Enable colored output",
	},
	KeyFlagNoColor: {
		ja: "標準出力に色を付けません",
		en: "Disable colored output",
	},
	KeyFlagNoClipbrd: {
		ja: "URLをクリップボードにコピーしません",
		en: "Do not copy the URL to the clipboard",
	},
	KeyFlagLogLevel: {
		ja: "診断ログのレベル（debug, info, warn, error）",
		en: "Diagnostic log level (debug, info, warn, error)",
	},
	KeyFlagLogFile: {
		ja: "診断ログの出力先ファイル（デフォルト: 標準エラー出力）",
		en: "File to write diagnostic logs to (default: standard error)",
	},
	KeyFlagHelp: {
		ja: "ヘルプを表示します",
		en: "Show help",
	},
	KeyFlagVersion: {
		ja: "バージョンを表示します",
		en: "Show version",
	},
}

var cat = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.Japanese))

	for key, e := range messages {
		mustSet(b, language.Japanese, key, e.ja)
		mustSet(b, language.English, key, e.en)
	}

	return b
}

func mustSet(b *catalog.Builder, tag language.Tag, key, msg string) {
	if err := b.SetString(tag, key, msg); err != nil {
		panic(fmt.Sprintf("locale: сообщение %q (%s): %v", key, tag, err))
	}
}

// Printer Принтер сообщений для выбранного языка.
func Printer(l Language) *message.Printer {
	return message.NewPrinter(l.Tag(), message.Catalog(cat))
}
