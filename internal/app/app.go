// Package app связывает разбор аргументов, проверку, вывод и жизненный цикл сервера.
package app

import (
	"context"
	"io"
	"net"
	"net/netip"
	"time"

	"github.com/trsv-dev/happy-server/internal/config"
	"github.com/trsv-dev/happy-server/internal/errs"
	"github.com/trsv-dev/happy-server/internal/features"
	"github.com/trsv-dev/happy-server/internal/logger"
	"github.com/trsv-dev/happy-server/internal/models"
	"github.com/trsv-dev/happy-server/internal/resolver"
	"github.com/trsv-dev/happy-server/internal/server"
	"github.com/trsv-dev/happy-server/internal/viewer"
)

// DefaultShutdownTimeout Сколько ждать завершения текущих запросов после прерывания.
const DefaultShutdownTimeout = 7 * time.Second

// Options Зависимости запуска. Нулевые поля заменяются значениями по умолчанию.
type Options struct {
	Features        features.Set
	Env             resolver.Env
	Clipboard       viewer.Clipboard
	TLS             *models.TLSMaterial
	ShutdownTimeout time.Duration
	// Started вызывается после вывода сообщения о запуске с фактическим планом.
	Started func(plan models.BuildPlan)
}

// DefaultOptions Параметры для настоящего процесса.
func DefaultOptions() Options {
	return Options{
		Features:        features.Compiled(),
		Env:             resolver.OSEnv(),
		Clipboard:       viewer.NewSystemClipboard(),
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// Run Выполняет программу целиком и возвращает код выхода.
// ctx отменяется по сигналу прерывания.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, opts Options) int {
	if opts.Env.Getwd == nil {
		opts.Env = resolver.OSEnv()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = DefaultShutdownTimeout
	}

	raw, err := config.Parse(args, opts.Features, stdout, stderr)
	if err != nil {
		return errs.ExitCode(err)
	}

	logger.InitLogger(raw.LogLevel, raw.LogOutput)
	defer logger.Close()

	res := resolver.Resolve(raw, opts.Features, opts.Env)
	res.TLS = opts.TLS

	v := viewer.NewCLIViewer(stdout, res.Language, res.Style, res.Clipboard, opts.Clipboard)

	plan, report, err := res.Build(v)
	if err != nil {
		logger.Log.Error("Не удалось вывести результат проверки", logger.Err(err))
		return errs.ExitCode(err)
	}
	if report != nil {
		logger.Log.Debug("Параметры не прошли проверку", logger.Int("errors", len(report.Paragraphs)))
		return errs.ExitOK
	}

	srv, startErr := server.Start(plan)
	if startErr == nil {
		plan = withActualPort(plan, srv.Addr())
	}

	if err = v.RenderServerStart(startErr, plan); err != nil {
		logger.Log.Error("Не удалось вывести сообщение о запуске", logger.Err(err))
		if srv != nil {
			stopServer(srv, opts.ShutdownTimeout)
		}
		return errs.ExitRender
	}
	if startErr != nil {
		logger.Log.Error("Не удалось запустить сервер", logger.Err(startErr))
		return errs.ExitOK
	}

	srv.Serve()
	if opts.Started != nil {
		opts.Started(plan)
	}

	select {
	case <-ctx.Done():
		logger.Log.Info("Получен сигнал прерывания", logger.String("id", srv.ID().String()))
	case <-srv.ServeDone():
		logger.Log.Error("Цикл обслуживания завершился сам", logger.String("id", srv.ID().String()), logger.Err(srv.Err()))
	}

	stopServer(srv, opts.ShutdownTimeout)

	if err = v.RenderServerStop(); err != nil {
		logger.Log.Error("Не удалось вывести сообщение об остановке", logger.Err(errs.NewErrRender(err)))
		return errs.ExitRender
	}

	return errs.ExitOK
}

// stopServer Плавная остановка с ограничением по времени.
func stopServer(srv *server.Server, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		logger.Log.Warn("Остановка сервера с ошибкой", logger.String("id", srv.ID().String()), logger.Err(err))
	}

	// после таймаута Stop закрывает соединения принудительно, ждать можно без ограничения
	if err := srv.AwaitTermination(context.Background()); err != nil {
		logger.Log.Warn("Сервер не завершился вовремя", logger.String("id", srv.ID().String()), logger.Err(err))
	}
}

// withActualPort При -p 0 порт выбирает ОС, в URL нужен настоящий.
func withActualPort(plan models.BuildPlan, addr net.Addr) models.BuildPlan {
	if plan.Port() != 0 {
		return plan
	}

	tcp, ok := addr.(*net.TCPAddr)
	if !ok {
		return plan
	}

	plan.BindAddress = netip.AddrPortFrom(plan.BindAddress.Addr(), uint16(tcp.Port))

	return plan
}
