package logger

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// SlogAdapter Адаптер для логгера slog.
type SlogAdapter struct {
	slog   *slog.Logger
	output io.WriteCloser
}

func (s *SlogAdapter) Debug(msg string, fields ...Field) {
	s.slog.Debug(msg, convertFields(fields)...)
}

func (s *SlogAdapter) Info(msg string, fields ...Field) {
	s.slog.Info(msg, convertFields(fields)...)
}

func (s *SlogAdapter) Error(msg string, fields ...Field) {
	s.slog.Error(msg, convertFields(fields)...)
}

func (s *SlogAdapter) Warn(msg string, fields ...Field) {
	s.slog.Warn(msg, convertFields(fields)...)
}

// Close Закрывает файл логов, если логирование велось в файл.
func (s *SlogAdapter) Close() error {
	if s.output == nil {
		return nil
	}

	return s.output.Close()
}

func String(key string, val string) Field {
	return Field{
		Key:   key,
		Value: val,
	}
}

func Int(key string, val int) Field {
	return Field{
		Key:   key,
		Value: strconv.Itoa(val),
	}
}

// Err Поле с текстом ошибки, nil превращается в пустую строку.
func Err(err error) Field {
	if err == nil {
		return String("err", "")
	}

	return String("err", err.Error())
}

// Конвертация Fields в any[].
func convertFields(fields []Field) []any {
	args := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		args = append(args, f.Key, f.Value)
	}
	return args
}

var (
	// Log до вызова InitLogger пишет в никуда, чтобы пакеты можно было использовать
	// без явной инициализации (например, в тестах).
	Log  Logger = &SlogAdapter{slog: slog.New(slog.NewTextHandler(io.Discard, nil))}
	once sync.Once
)

// parseLevel Преобразует строковый уровень логирования в slog.Level.
// Неизвестный уровень - Debug.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}

// InitLogger Инициализирует глобальный логгер один раз за время жизни процесса.
// output: "stdout", "stderr" (или пустая строка) либо путь к файлу,
// ротация которого выполняется через lumberjack.
func InitLogger(level string, output string) {
	once.Do(func() {
		var (
			w      io.Writer
			closer io.WriteCloser
		)

		switch strings.ToLower(output) {
		case "stdout":
			w = os.Stdout
		case "", "stderr":
			w = os.Stderr
		default:
			lj := &lumberjack.Logger{
				Filename:   output,
				MaxSize:    10, // мегабайты
				MaxBackups: 3,
				MaxAge:     28, // дни
			}
			w = lj
			closer = lj
		}

		handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
		Log = &SlogAdapter{slog: slog.New(handler), output: closer}
	})
}

// Close Закрывает глобальный логгер, если он поддерживает закрытие.
func Close() error {
	if c, ok := Log.(interface{ Close() error }); ok {
		return c.Close()
	}

	return nil
}
