package api

import (
	"fmt"
	"net/url"

	sharedModels "github.com/IvanChernomyrdin/go-contact-api/internal/shared/models"
)

// AddContact создаёт новый контакт на сервере.
//
// Выполняет запрос:
//
//	POST /add_contact
//
// Тело запроса сериализуется в JSON из sharedModels.AddContactRequest.
// user_id должен ссылаться на существующего пользователя.
//
// Возвращает:
//   - sharedModels.MessageResponse с текстом результата
//   - ошибку, если запрос завершился неуспешно (не 2xx).
func (c *Client) AddContact(req sharedModels.AddContactRequest) (sharedModels.MessageResponse, error) {
	var resp sharedModels.MessageResponse
	err := c.PostJSON("/add_contact", req, &resp)
	return resp, err
}

// ListContacts загружает все контакты с сервера.
//
// Выполняет запрос:
//
//	GET /list_contacts
func (c *Client) ListContacts() (sharedModels.ListContactsResponse, error) {
	var resp sharedModels.ListContactsResponse
	err := c.GetJSON("/list_contacts", &resp)
	return resp, err
}

// GetContact загружает один контакт по id.
//
// Выполняет запрос:
//
//	GET /get_contact/{id}
//
// Успешный ответ сервера — плоский объект контакта (без конверта).
func (c *Client) GetContact(id int64) (sharedModels.Contact, error) {
	var resp sharedModels.Contact
	err := c.GetJSON(fmt.Sprintf("/get_contact/%d", id), &resp)
	return resp, err
}

// DeleteContact удаляет контакт на сервере по id.
//
// Выполняет запрос:
//
//	DELETE /delete_contact/{id}
//
// Удаление несуществующего id возвращает ошибку "Contact not found!".
func (c *Client) DeleteContact(id int64) (sharedModels.MessageResponse, error) {
	var resp sharedModels.MessageResponse
	err := c.DeleteJSON(fmt.Sprintf("/delete_contact/%d", id), &resp)
	return resp, err
}

// SearchContacts ищет контакты по подстроке имени.
//
// Выполняет запрос:
//
//	GET /search_contacts?name=<name>
//
// name экранируется как query-параметр.
func (c *Client) SearchContacts(name string) (sharedModels.ListContactsResponse, error) {
	var resp sharedModels.ListContactsResponse
	err := c.GetJSON("/search_contacts?name="+url.QueryEscape(name), &resp)
	return resp, err
}
