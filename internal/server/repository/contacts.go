// ContactsRepository реализует доступ к хранилищу контактов (PostgreSQL).
// Отвечает исключительно за сохранение и извлечение данных без бизнес-логики.
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/IvanChernomyrdin/go-contact-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-contact-api/internal/shared/errors"
)

type ContactsRepository struct {
	db           *sql.DB
	queryTimeout time.Duration
}

// queryTimeout (db.query_timeout) ограничивает каждый запрос к базе; 0 — без лимита.
func NewContactsRepository(db *sql.DB, queryTimeout time.Duration) *ContactsRepository {
	return &ContactsRepository{db: db, queryTimeout: queryTimeout}
}

// Create сохраняет новый контакт.
//
// Существование user_id здесь не проверяется — это делает сервисный слой,
// FK-констрейнта в схеме нет.
func (r *ContactsRepository) Create(ctx context.Context, c models.Contact) (int64, error) {
	ctx, cancel := withQueryTimeout(ctx, r.queryTimeout)
	defer cancel()

	var id int64

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO contacts (user_id, name, surname, phone_number)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		c.UserID,
		c.Name,
		c.Surname,
		c.PhoneNumber,
	).Scan(&id)

	if err != nil {
		return 0, serr.ErrInternal
	}

	return id, nil
}

// List возвращает все контакты без фильтрации и пагинации.
func (r *ContactsRepository) List(ctx context.Context) ([]models.Contact, error) {
	ctx, cancel := withQueryTimeout(ctx, r.queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, name, surname, phone_number FROM contacts`,
	)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	return scanContacts(rows)
}

func (r *ContactsRepository) GetByID(ctx context.Context, id int64) (models.Contact, error) {
	ctx, cancel := withQueryTimeout(ctx, r.queryTimeout)
	defer cancel()

	var c models.Contact

	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, surname, phone_number FROM contacts WHERE id=$1`,
		id,
	).Scan(&c.ID, &c.UserID, &c.Name, &c.Surname, &c.PhoneNumber)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.Contact{}, serr.ErrNotFound
		}
		return models.Contact{}, serr.ErrInternal
	}

	return c, nil
}

// Delete удаляет контакт по id.
// Если контакта нет — ErrNotFound (повторное удаление не является ошибкой сервера).
func (r *ContactsRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := withQueryTimeout(ctx, r.queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM contacts WHERE id=$1`,
		id,
	)
	if err != nil {
		return serr.ErrInternal
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if affected == 0 {
		return serr.ErrNotFound
	}

	return nil
}

// SearchByName ищет контакты по подстроке имени без учёта регистра (ILIKE).
func (r *ContactsRepository) SearchByName(ctx context.Context, name string) ([]models.Contact, error) {
	ctx, cancel := withQueryTimeout(ctx, r.queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, name, surname, phone_number
		 FROM contacts
		 WHERE name ILIKE '%' || $1 || '%'`,
		name,
	)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	return scanContacts(rows)
}

// scanContacts вычитывает все строки результата.
// Ошибка скана любой строки фейлит весь запрос: строки не пропускаются молча.
func scanContacts(rows *sql.Rows) ([]models.Contact, error) {
	var contacts []models.Contact
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Surname, &c.PhoneNumber); err != nil {
			return nil, serr.ErrInternal
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return contacts, nil
}
