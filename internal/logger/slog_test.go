package logger

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetLogger Сбрасывает синглтон логгера между тестами.
func resetLogger(t *testing.T) {
	t.Helper()

	Log = nil
	once = sync.Once{}
}

// TestSlogAdapterDebug Проверяет логирование уровня Debug.
func TestSlogAdapterDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	slogger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	adapter := &SlogAdapter{slog: slogger}

	adapter.Debug("буфер обмена недоступен", String("url", "http://localhost"))

	assert.Contains(t, buf.String(), "буфер обмена недоступен")
	assert.Contains(t, buf.String(), "url=http://localhost")
}

// TestSlogAdapterMultipleFields Проверяет логирование с несколькими полями.
func TestSlogAdapterMultipleFields(t *testing.T) {
	buf := &bytes.Buffer{}
	slogger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	adapter := &SlogAdapter{slog: slogger}

	adapter.Info("сервер запущен",
		String("address", "0.0.0.0:8080"),
		String("dist_dir", "/tmp/demo"),
		Int("port", 8080),
	)

	output := buf.String()
	assert.Contains(t, output, "address=0.0.0.0:8080")
	assert.Contains(t, output, "dist_dir=/tmp/demo")
	assert.Contains(t, output, "port=8080")
}

// TestFieldHelpers Проверяет конструкторы полей.
func TestFieldHelpers(t *testing.T) {
	tests := []struct {
		name      string
		field     Field
		wantKey   string
		wantValue string
	}{
		{"строка", String("dir", "/srv"), "dir", "/srv"},
		{"пустая строка", String("prefix", ""), "prefix", ""},
		{"int", Int("port", 80), "port", "80"},
		{"int ноль", Int("port", 0), "port", "0"},
		{"ошибка", Err(io.EOF), "err", "EOF"},
		{"nil ошибка", Err(nil), "err", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKey, tt.field.Key)
			assert.Equal(t, tt.wantValue, tt.field.Value)
		})
	}
}

// TestConvertFields Проверяет преобразование Fields в any[].
func TestConvertFields(t *testing.T) {
	result := convertFields([]Field{
		String("key1", "value1"),
		Int("key2", 123),
	})

	assert.Equal(t, []any{"key1", "value1", "key2", "123"}, result)
	assert.Empty(t, convertFields(nil))
}

// TestParseLevel Проверяет разбор уровня логирования без учёта регистра.
func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"unknown_level", slog.LevelDebug},
		{"", slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

// TestSlogAdapterLogLevels Проверяет фильтрацию по уровням логирования.
func TestSlogAdapterLogLevels(t *testing.T) {
	buf := &bytes.Buffer{}
	slogger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	adapter := &SlogAdapter{slog: slogger}

	adapter.Debug("debug message")
	adapter.Info("info message")
	adapter.Warn("warn message")
	adapter.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

// TestInitLoggerFile Проверяет запись логов в файл через lumberjack.
func TestInitLoggerFile(t *testing.T) {
	resetLogger(t)

	path := filepath.Join(t.TempDir(), "happy_server.log")

	InitLogger("info", path)
	require.NotNil(t, Log)

	Log.Info("раздача остановлена", String("state", "stopped"))
	Log.Debug("не должно попасть в файл")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "раздача остановлена")
	assert.Contains(t, string(data), "state=stopped")
	assert.NotContains(t, string(data), "не должно попасть в файл")
}

// TestInitLoggerStd Проверяет инициализацию с выводом в stdout/stderr.
func TestInitLoggerStd(t *testing.T) {
	for _, output := range []string{"stdout", "stderr", ""} {
		t.Run(output, func(t *testing.T) {
			resetLogger(t)

			InitLogger("error", output)

			require.NotNil(t, Log)
			// стандартные потоки не закрываются
			assert.NoError(t, Close())
		})
	}
}

// TestInitLoggerSingleton Проверяет что InitLogger работает как синглтон.
func TestInitLoggerSingleton(t *testing.T) {
	resetLogger(t)

	dir := t.TempDir()

	InitLogger("debug", filepath.Join(dir, "first.log"))
	firstLog := Log

	InitLogger("error", filepath.Join(dir, "second.log"))
	secondLog := Log

	assert.Same(t, firstLog, secondLog)
	require.NoError(t, Close())
}

// TestSlogAdapterCloseNil Проверяет закрытие адаптера с nil output.
func TestSlogAdapterCloseNil(t *testing.T) {
	adapter := &SlogAdapter{slog: slog.New(slog.NewTextHandler(io.Discard, nil))}

	assert.NoError(t, adapter.Close())
}

// TestLoggerConcurrency Проверяет конкурентное логирование.
func TestLoggerConcurrency(t *testing.T) {
	buf := &bytes.Buffer{}
	slogger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	adapter := &SlogAdapter{slog: slogger}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			adapter.Info("concurrent log", Int("id", id))
		}(i)
	}

	wg.Wait()

	assert.Equal(t, 10, strings.Count(buf.String(), "concurrent log"))
}
