// HTTP-хендлеры контактов: создание, список, получение, удаление, поиск
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/IvanChernomyrdin/go-contact-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-contact-api/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-contact-api/internal/shared/models"
)

// contactProjection переводит серверную модель в wire-модель.
//
// Одна форма для всех путей чтения (list/get/search),
// поле телефона везде phone_number.
func contactProjection(c models.Contact) sharedModels.Contact {
	return sharedModels.Contact{
		ID:          c.ID,
		UserID:      c.UserID,
		Name:        c.Name,
		Surname:     c.Surname,
		PhoneNumber: c.PhoneNumber,
	}
}

// contactIDFromURL достаёт целочисленный id контакта из URL.
//
// Нечисловой id эквивалентен несуществующему контакту (ok=false):
// исходный роутер просто не матчил такие пути.
func contactIDFromURL(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// AddContact создаёт новый контакт.
//
// Сервер:
//   - проверяет существование пользователя user_id;
//   - принимает остальные поля как есть (пустые строки и произвольные
//     форматы телефона не отклоняются).
//
// Ответы:
//   - 200 OK: контакт создан;
//   - 400 Bad Request: неверный JSON или пользователь user_id не существует;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Add a new contact
// @Description  Creates a contact referencing an existing user. Fails if the user does not exist.
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        request body models.AddContactRequest true "Add contact request"
// @Success      200 {object} models.MessageResponse
// @Failure      400 {object} models.MessageResponse "Bad JSON or user cannot be found"
// @Failure      500 {object} models.MessageResponse "Internal server error"
// @Router       /add_contact [post]
func (h *Handler) AddContact(w http.ResponseWriter, r *http.Request) {
	var req sharedModels.AddContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteMessage(w, http.StatusBadRequest, serr.ErrBadJSON.Error())
		return
	}

	_, err := h.Svc.Contacts.Add(r.Context(), models.Contact{
		UserID:      req.UserID,
		Name:        req.Name,
		Surname:     req.Surname,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrUserNotFound):
			WriteMessage(w, http.StatusBadRequest, MsgUserCannotBeFound)
		default:
			h.Log.Logger.Sugar().Errorw(
				"add contact failed",
				"error", err,
				"user_id", req.UserID,
			)
			WriteMessage(w, http.StatusInternalServerError, serr.ErrInternal.Error())
		}
		return
	}

	WriteMessage(w, http.StatusOK, MsgContactAdded)
}

// DeleteContact удаляет контакт по id из URL.
//
// Повторное удаление уже удалённого id возвращает тот же 404,
// что и удаление несуществующего — не ошибку сервера.
//
// Ответы:
//   - 200 OK: контакт удалён;
//   - 404 Not Found: контакта с таким id нет;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Delete a contact
// @Description  Deletes the contact with the given id. Deleting an absent id yields 404.
// @Tags         contacts
// @Produce      json
// @Param        id path int true "Contact ID"
// @Success      200 {object} models.MessageResponse
// @Failure      404 {object} models.MessageResponse "Contact not found"
// @Failure      500 {object} models.MessageResponse "Internal server error"
// @Router       /delete_contact/{id} [delete]
func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, ok := contactIDFromURL(r)
	if !ok {
		WriteMessage(w, http.StatusNotFound, MsgContactNotFound)
		return
	}

	if err := h.Svc.Contacts.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteMessage(w, http.StatusNotFound, MsgContactNotFound)
		default:
			h.Log.Logger.Sugar().Errorw(
				"delete contact failed",
				"error", err,
				"contact_id", id,
			)
			WriteMessage(w, http.StatusInternalServerError, serr.ErrInternal.Error())
		}
		return
	}

	WriteMessage(w, http.StatusOK, MsgContactDeleted)
}

// ListContacts возвращает все контакты.
//
// Пагинации нет: размер ответа растёт вместе с таблицей.
//
// @Summary      List contacts
// @Description  Returns the full unfiltered set of contacts.
// @Tags         contacts
// @Produce      json
// @Success      200 {object} models.ListContactsResponse
// @Failure      500 {object} models.MessageResponse "Internal server error"
// @Router       /list_contacts [get]
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.Svc.Contacts.List(r.Context())
	if err != nil {
		h.Log.Logger.Sugar().Errorw("list contacts failed", "error", err)
		WriteMessage(w, http.StatusInternalServerError, serr.ErrInternal.Error())
		return
	}

	WriteJSON(w, http.StatusOK, contactsResponse(contacts))
}

// GetContact возвращает один контакт по id из URL.
//
// Успешный ответ — плоский объект контакта без конверта
// (в отличие от спискового {"contacts": [...]}).
//
// Ответы:
//   - 200 OK: контакт найден;
//   - 404 Not Found: контакта с таким id нет;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Get a contact by ID
// @Description  Returns a single contact as a flat object.
// @Tags         contacts
// @Produce      json
// @Param        id path int true "Contact ID"
// @Success      200 {object} models.Contact
// @Failure      404 {object} models.MessageResponse "Contact not found"
// @Failure      500 {object} models.MessageResponse "Internal server error"
// @Router       /get_contact/{id} [get]
func (h *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	id, ok := contactIDFromURL(r)
	if !ok {
		WriteMessage(w, http.StatusNotFound, MsgContactNotFound)
		return
	}

	contact, err := h.Svc.Contacts.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteMessage(w, http.StatusNotFound, MsgContactNotFound)
		default:
			h.Log.Logger.Sugar().Errorw(
				"get contact failed",
				"error", err,
				"contact_id", id,
			)
			WriteMessage(w, http.StatusInternalServerError, serr.ErrInternal.Error())
		}
		return
	}

	WriteJSON(w, http.StatusOK, contactProjection(contact))
}

// SearchContacts ищет контакты по подстроке имени без учёта регистра.
//
// Параметр name обязателен. Результаты сериализуются той же проекцией,
// что list/get; строка, которую не удалось вычитать, фейлит весь запрос
// (молчаливого пропуска строк нет).
//
// Ответы:
//   - 200 OK: список совпадений (возможно пустой);
//   - 400 Bad Request: параметр name отсутствует или пуст;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Search contacts by name
// @Description  Case-insensitive substring match of the name query parameter against contact names.
// @Tags         contacts
// @Produce      json
// @Param        name query string true "Substring to search for"
// @Success      200 {object} models.ListContactsResponse
// @Failure      400 {object} models.MessageResponse "Missing name parameter"
// @Failure      500 {object} models.MessageResponse "Internal server error"
// @Router       /search_contacts [get]
func (h *Handler) SearchContacts(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	contacts, err := h.Svc.Contacts.Search(r.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrEmptySearchName):
			WriteMessage(w, http.StatusBadRequest, MsgNameRequired)
		default:
			h.Log.Logger.Sugar().Errorw(
				"search contacts failed",
				"error", err,
				"name", name,
			)
			WriteMessage(w, http.StatusInternalServerError, serr.ErrInternal.Error())
		}
		return
	}

	WriteJSON(w, http.StatusOK, contactsResponse(contacts))
}

// contactsResponse собирает списковый конверт; пустой список — это [], не null.
func contactsResponse(contacts []models.Contact) sharedModels.ListContactsResponse {
	projected := make([]sharedModels.Contact, 0, len(contacts))
	for _, c := range contacts {
		projected = append(projected, contactProjection(c))
	}
	return sharedModels.ListContactsResponse{Contacts: projected}
}
