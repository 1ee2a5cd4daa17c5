package api

import (
	sharedModels "github.com/IvanChernomyrdin/go-contact-api/internal/shared/models"
)

// AddUser создаёт нового пользователя на сервере.
//
// Выполняет запрос:
//
//	POST /add_user
//
// Возвращает:
//   - sharedModels.MessageResponse с текстом результата
//   - ошибку, если запрос завершился неуспешно (не 2xx), например
//     когда username уже занят.
func (c *Client) AddUser(req sharedModels.AddUserRequest) (sharedModels.MessageResponse, error) {
	var resp sharedModels.MessageResponse
	err := c.PostJSON("/add_user", req, &resp)
	return resp, err
}

// ListUsers загружает всех пользователей с сервера.
//
// Выполняет запрос:
//
//	GET /list_users
//
// Возвращает:
//   - sharedModels.ListUsersResponse (массив users в публичной проекции)
//   - ошибку, если запрос завершился неуспешно или ответ не удалось декодировать.
func (c *Client) ListUsers() (sharedModels.ListUsersResponse, error) {
	var resp sharedModels.ListUsersResponse
	err := c.GetJSON("/list_users", &resp)
	return resp, err
}
