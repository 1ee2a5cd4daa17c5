package models

// User — публичная проекция пользователя в HTTP API.
//
// Хэш пароля в публичную проекцию не попадает никогда:
// наружу отдаются только id и username.
//
// Поля:
//   - ID: целочисленный идентификатор (назначается базой)
//   - Username: уникальное имя пользователя
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Contact — плоская модель контакта, используемая в HTTP API.
//
// Одна и та же форма используется во всех путях чтения
// (list / get / search), поле телефона везде называется phone_number.
//
// Поля:
//   - ID: целочисленный идентификатор контакта (назначается базой)
//   - UserID: id пользователя-владельца
//   - Name: имя (обязательное)
//   - Surname: фамилия (обязательная)
//   - PhoneNumber: телефон (обязательный, до 20 символов)
type Contact struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	PhoneNumber string `json:"phone_number"`
}

// AddUserRequest — запрос на создание пользователя.
//
// Используется в:
//
//	POST /add_user
type AddUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AddContactRequest — запрос на создание контакта.
//
// Используется в:
//
//	POST /add_contact
//
// UserID должен ссылаться на существующего пользователя,
// остальные поля принимаются как есть (дополнительной валидации формата нет).
type AddContactRequest struct {
	UserID      int64  `json:"user_id"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	PhoneNumber string `json:"phone_number"`
}

// MessageResponse — стандартный конверт сообщения API.
//
// Используется и для успешных операций записи
// ("User added successfully!"), и для ошибок ("Contact not found!").
type MessageResponse struct {
	Message string `json:"message"`
}

// ListUsersResponse — ответ эндпоинта получения всех пользователей.
//
// Используется в:
//
//	GET /list_users
type ListUsersResponse struct {
	Users []User `json:"users"`
}

// ListContactsResponse — ответ эндпоинтов, возвращающих список контактов.
//
// Используется в:
//
//	GET /list_contacts
//	GET /search_contacts
type ListContactsResponse struct {
	Contacts []Contact `json:"contacts"`
}
