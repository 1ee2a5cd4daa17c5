// Package service содержит бизнес-логику приложения (contact-api).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"
	"strings"

	"github.com/IvanChernomyrdin/go-contact-api/internal/server/config"
	"github.com/IvanChernomyrdin/go-contact-api/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-contact-api/internal/server/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users    UsersRepo
	Contacts ContactsRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Users    *UsersService
	Contacts *ContactsService
}

// NewServices собирает все сервисы приложения.
// cfg нужен UsersService (выбор стратегии хэширования пароля).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Users:    NewUsersService(repos.Users, hasherFromConfig(cfg)),
		Contacts: NewContactsService(repos.Contacts, repos.Users),
	}
}

// hasherFromConfig выбирает стратегию хэширования по конфигу.
// Конфиг провалидирован на старте, поэтому default — это legacy sha256.
func hasherFromConfig(cfg *config.Config) crypto.Hasher {
	if strings.ToLower(cfg.Password.Hasher) == "argon2id" {
		return crypto.Argon2Hasher{Params: crypto.Argon2Params{
			Time:      cfg.Password.Argon2.Time,
			MemoryKiB: cfg.Password.Argon2.MemoryKiB,
			Threads:   cfg.Password.Argon2.Threads,
			KeyLen:    cfg.Password.Argon2.KeyLen,
			SaltLen:   cfg.Password.Argon2.SaltLen,
		}}
	}
	return crypto.SHA256Hasher{}
}

// UsersRepo — репозиторий пользователей.
type UsersRepo interface {
	Create(ctx context.Context, username, passwordHash string) (int64, error)
	List(ctx context.Context) ([]models.User, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// ContactsRepo — репозиторий контактов (CRUD + поиск по имени).
type ContactsRepo interface {
	Create(ctx context.Context, c models.Contact) (int64, error)
	List(ctx context.Context) ([]models.Contact, error)
	GetByID(ctx context.Context, id int64) (models.Contact, error)
	Delete(ctx context.Context, id int64) error
	SearchByName(ctx context.Context, name string) ([]models.Contact, error)
}
