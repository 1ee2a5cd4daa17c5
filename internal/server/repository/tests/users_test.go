package tests

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-contact-api/internal/server/repository"
	serr "github.com/IvanChernomyrdin/go-contact-api/internal/shared/errors"
)

// Успех
func TestUsersRepository_Create_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db, 0)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("bob", "hash").
		WillReturnRows(
			sqlmock.NewRows([]string{"id"}).AddRow(int64(1)),
		)

	got, err := repo.Create(context.Background(), "bob", "hash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected id 1, got %v", got)
	}
}

// Такой пользователь уже есть
func TestUsersRepository_Create_AlreadyExists(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db, 0)

	pgErr := &pgconn.PgError{
		Code: "23505", // unique_violation
	}

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(pgErr)

	_, err := repo.Create(context.Background(), "bob", "hash")

	if err != serr.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

// Ошибка сервера
func TestUsersRepository_Create_InternalError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db, 0)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.Create(context.Background(), "bob", "hash")

	if err != serr.ErrInternal {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

// полный список
func TestUsersRepository_List_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db, 0)

	mock.ExpectQuery(`SELECT id, username, password_hash FROM users`).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "username", "password_hash"}).
				AddRow(int64(1), "bob", "hash1").
				AddRow(int64(2), "alice", "hash2"),
		)

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Username != "bob" || users[1].Username != "alice" {
		t.Fatalf("unexpected users order/content: %+v", users)
	}
}

// пустая таблица — не ошибка
func TestUsersRepository_List_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db, 0)

	mock.ExpectQuery(`SELECT id, username, password_hash FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash"}))

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected 0 users, got %d", len(users))
	}
}

// db.query_timeout обрывает завысший запрос
func TestUsersRepository_List_QueryTimeout(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db, 20*time.Millisecond)

	mock.ExpectQuery(`SELECT id, username, password_hash FROM users`).
		WillDelayFor(500 * time.Millisecond).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash"}))

	_, err := repo.List(context.Background())

	if err != serr.ErrInternal {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

// проверка существования
func TestUsersRepository_ExistsByID(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db, 0)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Fatalf("expected exists=true")
	}

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err = repo.ExistsByID(context.Background(), 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Fatalf("expected exists=false")
	}
}
