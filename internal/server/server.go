package server

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/trsv-dev/happy-server/internal/errs"
	"github.com/trsv-dev/happy-server/internal/logger"
	"github.com/trsv-dev/happy-server/internal/models"
	"github.com/trsv-dev/happy-server/internal/router"
	"golang.org/x/net/http2"
)

// State Состояние жизненного цикла сервера.
type State int

const (
	StateStarting State = iota
	StateRunning
	StateStopping
	StateStopped
)

// String Стрингер для State.
func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Server Запущенный сервер раздачи каталога.
// Единственный внешний переход состояния - Running -> Stopping через Stop.
type Server struct {
	id         uuid.UUID
	httpServer *http.Server
	listener   net.Listener

	mu    sync.Mutex
	state State

	serveDone chan struct{}
	stopped   chan struct{}
	serveErr  error
}

// NewServer Создание http.Server для плана сборки.
func NewServer(plan models.BuildPlan) *http.Server {
	mux := router.Router(plan.DistDir, plan.URIPrefix)

	server := &http.Server{
		Addr:              plan.BindAddress.String(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return server
}

// Start Привязывает сокет и готовит TLS, но ещё не обслуживает запросы:
// запросы принимаются только после Serve. Занятый или привилегированный порт,
// повреждённый TLS-материал возвращаются как ErrServerStart.
func Start(plan models.BuildPlan) (*Server, error) {
	httpServer := NewServer(plan)

	listener, err := net.Listen("tcp4", httpServer.Addr)
	if err != nil {
		return nil, errs.NewErrServerStart(httpServer.Addr, err)
	}

	if plan.TLS != nil {
		tlsConfig, err := configureTLS(httpServer, plan.TLS)
		if err != nil {
			_ = listener.Close()
			return nil, errs.NewErrServerStart(httpServer.Addr, err)
		}
		listener = tls.NewListener(listener, tlsConfig)
	}

	s := &Server{
		id:         uuid.New(),
		httpServer: httpServer,
		listener:   listener,
		state:      StateStarting,
		serveDone:  make(chan struct{}),
		stopped:    make(chan struct{}),
	}

	logger.Log.Debug("Сокет привязан",
		logger.String("id", s.id.String()),
		logger.String("address", listener.Addr().String()),
		logger.String("dist_dir", plan.DistDir),
		logger.String("uri_prefix", plan.URIPrefix),
	)

	return s, nil
}

// configureTLS Загружает сертификат и ключ, объявляет h2 и http/1.1 через ALPN.
func configureTLS(httpServer *http.Server, material *models.TLSMaterial) (*tls.Config, error) {
	cert, err := tls.X509KeyPair(material.CertChainPEM, material.PrivateKeyPEM)
	if err != nil {
		return nil, err
	}

	httpServer.TLSConfig = &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
		NextProtos:   []string{http2.NextProtoTLS, "http/1.1"},
	}

	if err = http2.ConfigureServer(httpServer, &http2.Server{}); err != nil {
		return nil, err
	}

	return httpServer.TLSConfig, nil
}

// Serve Запускает обслуживание запросов в горутине: Starting -> Running.
// Повторный вызов ничего не делает.
func (s *Server) Serve() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateStarting {
		return
	}
	s.state = StateRunning

	go func() {
		defer close(s.serveDone)

		logger.Log.Info("Сервер запущен", logger.String("id", s.id.String()), logger.String("address", s.Addr().String()))
		if err := s.httpServer.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Ошибка сервера", logger.String("id", s.id.String()), logger.Err(err))
			s.serveErr = err
		}
	}()
}

// Stop Плавная остановка: Running -> Stopping -> Stopped. Новые соединения
// не принимаются, текущие запросы дорабатывают. Если ctx истёк раньше,
// оставшиеся соединения закрываются принудительно.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	prev := s.state
	if prev == StateStarting || prev == StateRunning {
		s.state = StateStopping
	}
	s.mu.Unlock()

	switch prev {
	case StateStarting:
		// Serve не вызывался, слушатель принадлежит нам
		err := s.listener.Close()
		close(s.serveDone)
		s.finish()
		return err
	case StateStopping, StateStopped:
		return s.AwaitTermination(ctx)
	}

	logger.Log.Info("Начало остановки сервера", logger.String("id", s.id.String()))

	shutdownErr := s.httpServer.Shutdown(ctx)
	if shutdownErr != nil {
		logger.Log.Warn("Таймаут плавной остановки, закрываем соединения", logger.String("id", s.id.String()), logger.Err(shutdownErr))
		_ = s.httpServer.Close()
	}

	<-s.serveDone
	s.finish()

	logger.Log.Info("Сервер остановлен", logger.String("id", s.id.String()))

	return shutdownErr
}

// finish Переводит сервер в Stopped.
func (s *Server) finish() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateStopped {
		return
	}
	s.state = StateStopped
	close(s.stopped)
}

// AwaitTermination Блокируется до перехода в Stopped или отмены ctx.
func (s *Server) AwaitTermination(ctx context.Context) error {
	select {
	case <-s.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ServeDone Закрывается, когда цикл обслуживания завершился (остановка или сбой).
func (s *Server) ServeDone() <-chan struct{} {
	return s.serveDone
}

// Err Ошибка цикла обслуживания. Имеет смысл после закрытия ServeDone.
func (s *Server) Err() error {
	select {
	case <-s.serveDone:
		return s.serveErr
	default:
		return nil
	}
}

// State Текущее состояние.
func (s *Server) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Addr Фактический адрес слушателя (важно при порте 0).
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// ID Идентификатор экземпляра сервера для логов.
func (s *Server) ID() uuid.UUID {
	return s.id
}
