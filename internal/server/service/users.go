package service

import (
	"context"

	"github.com/IvanChernomyrdin/go-contact-api/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-contact-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-contact-api/internal/shared/errors"
)

// UsersService реализует бизнес-логику работы с пользователями.
//
// Ответственность:
//   - регистрация пользователей (хэширование пароля выбранной стратегией)
//   - выдача списка пользователей
//
// Логина нет: хэш пароля сохраняется, но нигде не сверяется.
type UsersService struct {
	users  UsersRepo
	hasher crypto.Hasher
}

// NewUsersService создаёт UsersService с зависимостями.
func NewUsersService(users UsersRepo, hasher crypto.Hasher) *UsersService {
	return &UsersService{
		users:  users,
		hasher: hasher,
	}
}

// Add регистрирует нового пользователя.
//
// Валидации полей нет: любые строки (включая пустые) принимаются как есть,
// уникален только username. Формат и длина не проверяются.
//
// Возвращает:
//   - id пользователя
//   - ErrAlreadyExists если username занят
func (s *UsersService) Add(ctx context.Context, username, password string) (int64, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return 0, serr.ErrInternal
	}

	return s.users.Create(ctx, username, hash)
}

// List возвращает всех пользователей в порядке выдачи базы.
// Проекцию без password_hash делает api слой.
func (s *UsersService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}
