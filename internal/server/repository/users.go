package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-contact-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-contact-api/internal/shared/errors"
)

type UsersRepository struct {
	db           *sql.DB
	queryTimeout time.Duration
}

// queryTimeout (db.query_timeout) ограничивает каждый запрос к базе; 0 — без лимита.
func NewUsersRepository(db *sql.DB, queryTimeout time.Duration) *UsersRepository {
	return &UsersRepository{db: db, queryTimeout: queryTimeout}
}

func (r *UsersRepository) Create(ctx context.Context, username, passwordHash string) (int64, error) {
	ctx, cancel := withQueryTimeout(ctx, r.queryTimeout)
	defer cancel()

	var id int64

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (username, password_hash)
		 VALUES ($1,$2)
		 RETURNING id`,
		username, passwordHash,
	).Scan(&id)

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" { // unique_violation
				return 0, serr.ErrAlreadyExists
			}
		}
		return 0, serr.ErrInternal
	}

	return id, nil
}

// List возвращает всех пользователей в порядке выдачи базы.
func (r *UsersRepository) List(ctx context.Context) ([]models.User, error) {
	ctx, cancel := withQueryTimeout(ctx, r.queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, username, password_hash FROM users`,
	)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash); err != nil {
			return nil, serr.ErrInternal
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return users, nil
}

// ExistsByID проверяет существование пользователя перед созданием контакта.
func (r *UsersRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := withQueryTimeout(ctx, r.queryTimeout)
	defer cancel()

	var exists bool

	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE id=$1)`,
		id,
	).Scan(&exists)

	if err != nil {
		return false, serr.ErrInternal
	}

	return exists, nil
}
