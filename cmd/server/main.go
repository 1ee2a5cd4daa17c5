// @title           Contact API
// @version         1.0
// @description     Minimal contact management backend.
// @description     Stores users and their contacts in PostgreSQL.

// @contact.name   Ivan Chernomyrdin
// @contact.url    https://github.com/IvanChernomyrdin

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
//
// Package main содержит точку входа серверного приложения Contact API.
//
// Пакет отвечает за инициализацию и жизненный цикл HTTP-сервера, а именно:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации сервера из файла ./configs/server.yaml;
//   - открытие подключения к базе данных и управление его жизненным циклом;
//   - применение миграций (создание таблиц users/contacts) до приёма трафика;
//   - создание репозиториев, сервисов и HTTP-обработчиков;
//   - настройку и запуск HTTP(S)-сервера с заданными таймаутами;
//   - обработку системных сигналов завершения (SIGINT, SIGTERM, SIGQUIT);
//   - корректное (graceful) завершение работы сервера с таймаутом.
//
// Пакет не содержит бизнес-логики и не предназначен для unit-тестирования.
// HTTP API сервера реализовано в пакете internal/server/api и документируется с помощью OpenAPI (Swagger).
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/go-contact-api/internal/server/api"
	"github.com/IvanChernomyrdin/go-contact-api/internal/server/config"
	"github.com/IvanChernomyrdin/go-contact-api/internal/server/repository"
	"github.com/IvanChernomyrdin/go-contact-api/internal/server/service"
	"github.com/IvanChernomyrdin/go-contact-api/internal/shared/logger"

	_ "github.com/IvanChernomyrdin/go-contact-api/swagger/docs"
)

func main() {
	httpLogger := logger.NewHTTPLogger()
	sugar := httpLogger.Logger.Sugar()

	if err := godotenv.Load(); err != nil {
		sugar.Warnf("no .env file loaded, error: %v", err)
	}

	cfg, err := config.Load("./configs/server.yaml")
	if err != nil {
		sugar.Fatal(err)
	}
	cfg.ApplyEnvOverrides()

	// подключаем базу данных
	db, err := config.Open(cfg.DB)
	if err != nil {
		sugar.Fatal(err)
	}
	// делаем отложенное закрытие бд
	defer db.Close()

	// схема создаётся один раз на старте, не в request-time коде
	if cfg.Migrations.Enabled {
		if err := config.Migrate(db, cfg.Migrations.Path); err != nil {
			sugar.Fatal(err)
		}
		sugar.Info("migrations applied successfully")
	}

	// создаём репы (db.query_timeout ограничивает каждый запрос к базе)
	usersRepo := repository.NewUsersRepository(db, cfg.DB.QueryTimeout)
	contactsRepo := repository.NewContactsRepository(db, cfg.DB.QueryTimeout)
	// складываем в репозиторий
	repos := service.Repositories{
		Users:    usersRepo,
		Contacts: contactsRepo,
	}
	// создаём сервис
	svc := service.NewServices(repos, cfg)
	// создаём хандлер
	handler := api.NewHandler(svc, httpLogger)
	// создаём роутер
	router := api.NewRouter(handler, cfg.Server.MaxBodyBytes)
	// создаём сервер
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// создаём контекст и errgroup
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// запускаем сервер
	g.Go(func() error {
		sugar.Infof("server started on %s", addr)

		var err error
		if cfg.TLS.Enabled {
			err = server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			cfg.Server.ShutdownTimeout,
		)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	// ожидание и единая обработка ошибок
	if err := g.Wait(); err != nil {
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}
