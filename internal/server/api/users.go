// HTTP-хендлеры пользователей: создание и список
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	serr "github.com/IvanChernomyrdin/go-contact-api/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-contact-api/internal/shared/models"
)

// AddUser обрабатывает создание пользователя.
//
// Пароль хэшируется выбранной в конфиге стратегией, в базу попадает
// только дайджест. Эндпоинта логина нет — дайджест нигде не сверяется.
//
// Поля не валидируются: любые строки (включая пустые) принимаются как есть.
//
// Ответы:
//   - 200 OK: пользователь создан;
//   - 400 Bad Request: неверный JSON или username уже занят;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Add a new user
// @Description  Creates a user with a unique username. The password is stored as a one-way digest.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body models.AddUserRequest true "Add user request"
// @Success      200 {object} models.MessageResponse
// @Failure      400 {object} models.MessageResponse "Bad JSON or username taken"
// @Failure      500 {object} models.MessageResponse "Internal server error"
// @Router       /add_user [post]
func (h *Handler) AddUser(w http.ResponseWriter, r *http.Request) {
	var req sharedModels.AddUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteMessage(w, http.StatusBadRequest, serr.ErrBadJSON.Error())
		return
	}

	_, err := h.Svc.Users.Add(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrAlreadyExists):
			WriteMessage(w, http.StatusBadRequest, MsgUsernameTaken)
		default:
			h.Log.Logger.Sugar().Errorw(
				"add user failed",
				"error", err,
				"username", req.Username,
			)
			WriteMessage(w, http.StatusInternalServerError, serr.ErrInternal.Error())
		}
		return
	}

	WriteMessage(w, http.StatusOK, MsgUserAdded)
}

// ListUsers возвращает всех пользователей.
//
// Пользователи отдаются в публичной проекции {id, username}:
// password_hash наружу не попадает никогда. Порядок — порядок выдачи базы.
//
// Возможные ошибки:
//   - 500 Internal Server Error: ошибка доступа к хранилищу.
//
// @Summary      List users
// @Description  Returns all users as {id, username}. The password digest is never exposed.
// @Tags         users
// @Produce      json
// @Success      200 {object} models.ListUsersResponse
// @Failure      500 {object} models.MessageResponse "Internal server error"
// @Router       /list_users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.Users.List(r.Context())
	if err != nil {
		h.Log.Logger.Sugar().Errorw("list users failed", "error", err)
		WriteMessage(w, http.StatusInternalServerError, serr.ErrInternal.Error())
		return
	}

	// пустой список сериализуем как [], не null
	projected := make([]sharedModels.User, 0, len(users))
	for _, u := range users {
		projected = append(projected, sharedModels.User{
			ID:       u.ID,
			Username: u.Username,
		})
	}

	WriteJSON(w, http.StatusOK, sharedModels.ListUsersResponse{Users: projected})
}
