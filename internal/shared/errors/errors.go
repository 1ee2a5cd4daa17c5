// Package errors содержит общие доменные ошибки приложения
// и утилиты для error wrapping.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы и сообщения API в api слое.
package errors

import "errors"

var (
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Ресурс уже существует (например username уже занят)
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
)

// только для контактов
var (
	// Пользователь с таким id не существует (проверка при создании контакта)
	ErrUserNotFound = errors.New("user cannot be found")
	// Пустой параметр name в поиске
	ErrEmptySearchName = errors.New("empty search name")
)
