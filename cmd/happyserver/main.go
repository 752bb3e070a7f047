package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/trsv-dev/happy-server/internal/app"
)

// "Сборка" и запуск раздачи каталога.
func main() {
	os.Exit(run())
}

func run() (code int) {
	// recover для логирования паник в main
	defer func() {
		if r := recover(); r != nil {
			log.Println("Паника в main:", fmt.Sprintf("%v", r))
			code = 1
		}
	}()

	// Ctrl+C или закрытие окна отменяют контекст и запускают плавную остановку
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	return app.Run(ctx, os.Args[1:], os.Stdout, os.Stderr, app.DefaultOptions())
}
