// Серверная модель контакта
package models

// Contact принадлежит пользователю через UserID, но FK-констрейнта в базе нет:
// существование пользователя проверяется только при создании контакта.
type Contact struct {
	ID          int64
	UserID      int64
	Name        string
	Surname     string
	PhoneNumber string
}
