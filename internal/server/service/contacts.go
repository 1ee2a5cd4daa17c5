package service

import (
	"context"

	"github.com/IvanChernomyrdin/go-contact-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-contact-api/internal/shared/errors"
)

// ContactsService реализует бизнес-логику работы с контактами.
//
// Ответственность:
//   - создание контакта с проверкой существования пользователя-владельца
//   - выдача списка, получение и удаление по id
//   - поиск по подстроке имени без учёта регистра
type ContactsService struct {
	contacts ContactsRepo
	users    UsersRepo
}

// NewContactsService создаёт ContactsService с зависимостями.
func NewContactsService(contacts ContactsRepo, users UsersRepo) *ContactsService {
	return &ContactsService{
		contacts: contacts,
		users:    users,
	}
}

// Add создаёт новый контакт.
//
// Перед вставкой проверяется существование пользователя user_id.
// Остальные поля принимаются как есть: пустые строки и произвольные
// форматы телефона не отклоняются (совместимость с исходным API).
//
// Ошибки:
//   - ErrUserNotFound — пользователь не существует
func (s *ContactsService) Add(ctx context.Context, c models.Contact) (int64, error) {
	exists, err := s.users.ExistsByID(ctx, c.UserID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, serr.ErrUserNotFound
	}

	return s.contacts.Create(ctx, c)
}

// List возвращает все контакты без пагинации.
func (s *ContactsService) List(ctx context.Context) ([]models.Contact, error) {
	return s.contacts.List(ctx)
}

// Get возвращает контакт по id.
//
// Ошибки:
//   - ErrNotFound — контакта нет
func (s *ContactsService) Get(ctx context.Context, id int64) (models.Contact, error) {
	return s.contacts.GetByID(ctx, id)
}

// Delete удаляет контакт по id.
//
// Повторное удаление уже удалённого контакта возвращает ErrNotFound,
// не падение: удаление идемпотентно с точки зрения состояния базы.
func (s *ContactsService) Delete(ctx context.Context, id int64) error {
	return s.contacts.Delete(ctx, id)
}

// Search ищет контакты по подстроке имени без учёта регистра.
//
// Ошибки:
//   - ErrEmptySearchName — параметр name пустой или отсутствует
func (s *ContactsService) Search(ctx context.Context, name string) ([]models.Contact, error) {
	if name == "" {
		return nil, serr.ErrEmptySearchName
	}

	return s.contacts.SearchByName(ctx, name)
}
