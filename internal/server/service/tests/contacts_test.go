package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-contact-api/internal/server/models"
	"github.com/IvanChernomyrdin/go-contact-api/internal/server/service"
	"github.com/IvanChernomyrdin/go-contact-api/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/go-contact-api/internal/shared/errors"
)

// создаём сервис
func newContactsService(t *testing.T) (*service.ContactsService, *mocks.MockContactsRepo, *mocks.MockUsersRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)

	users := mocks.NewMockUsersRepo(ctrl)
	contacts := mocks.NewMockContactsRepo(ctrl)

	svc := service.NewServices(service.Repositories{
		Users:    users,
		Contacts: contacts,
	}, testConfig())

	return svc.Contacts, contacts, users
}

// Успех: пользователь существует, контакт создаётся
func TestContactsService_Add_OK(t *testing.T) {
	ctx := context.Background()
	svc, contacts, users := newContactsService(t)

	c := models.Contact{
		UserID:      1,
		Name:        "Jane",
		Surname:     "Doe",
		PhoneNumber: "12345",
	}

	users.EXPECT().
		ExistsByID(ctx, int64(1)).
		Return(true, nil)

	contacts.EXPECT().
		Create(ctx, c).
		Return(int64(10), nil)

	id, err := svc.Add(ctx, c)

	require.NoError(t, err)
	require.Equal(t, int64(10), id)
}

// Пользователь не существует: вставка не выполняется
func TestContactsService_Add_UserNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, users := newContactsService(t)

	users.EXPECT().
		ExistsByID(ctx, int64(99)).
		Return(false, nil)

	_, err := svc.Add(ctx, models.Contact{UserID: 99, Name: "Jane"})

	require.ErrorIs(t, err, serr.ErrUserNotFound)
}

// Пустые строки в полях контакта принимаются (совместимость с исходным API)
func TestContactsService_Add_EmptyFieldsAccepted(t *testing.T) {
	ctx := context.Background()
	svc, contacts, users := newContactsService(t)

	c := models.Contact{UserID: 1}

	users.EXPECT().
		ExistsByID(ctx, int64(1)).
		Return(true, nil)

	contacts.EXPECT().
		Create(ctx, c).
		Return(int64(11), nil)

	_, err := svc.Add(ctx, c)

	require.NoError(t, err)
}

// Get / Delete — passthrough ошибок репозитория
func TestContactsService_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, contacts, _ := newContactsService(t)

	contacts.EXPECT().
		GetByID(ctx, int64(404)).
		Return(models.Contact{}, serr.ErrNotFound)

	_, err := svc.Get(ctx, 404)

	require.ErrorIs(t, err, serr.ErrNotFound)
}

func TestContactsService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, contacts, _ := newContactsService(t)

	contacts.EXPECT().
		Delete(ctx, int64(404)).
		Return(serr.ErrNotFound)

	err := svc.Delete(ctx, 404)

	require.ErrorIs(t, err, serr.ErrNotFound)
}

// Пустой name отклоняется без похода в базу
func TestContactsService_Search_EmptyName(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newContactsService(t)

	_, err := svc.Search(ctx, "")

	require.ErrorIs(t, err, serr.ErrEmptySearchName)
}

// Успех: подстрока уходит в репозиторий как есть
func TestContactsService_Search_OK(t *testing.T) {
	ctx := context.Background()
	svc, contacts, _ := newContactsService(t)

	want := []models.Contact{
		{ID: 11, UserID: 2, Name: "Ali", Surname: "Veli", PhoneNumber: "67890"},
	}

	contacts.EXPECT().
		SearchByName(ctx, "ali").
		Return(want, nil)

	got, err := svc.Search(ctx, "ali")

	require.NoError(t, err)
	require.Equal(t, want, got)
}
