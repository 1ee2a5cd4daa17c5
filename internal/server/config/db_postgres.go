// Подключение к PostgreSQL и provisioning схемы.
//
// В отличие от ранних версий здесь нет глобальной переменной DB:
// Open возвращает *sql.DB, который main передаёт в репозитории явно.
package config

import (
	"database/sql"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v4/stdlib"
)

// Open открывает подключение к базе данных по DSN, проверяет его
// доступность и применяет настройки пула из конфига.
func Open(cfg DBConfig) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.ConnMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return db, nil
}

// Migrate применяет миграции (golang-migrate) к открытой базе.
//
// sourcePath — путь к каталогу миграций, например "file://migrations/postgres".
// Таблицы users/contacts создаются здесь один раз на старте процесса,
// request-time код схему не трогает. Если миграции уже применены,
// ошибка migrate.ErrNoChange не считается ошибкой.
func Migrate(db *sql.DB, sourcePath string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourcePath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migrations init: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migrations up: %w", err)
	}

	return nil
}
