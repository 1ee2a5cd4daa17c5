// Package api реализует HTTP-слой сервера Contact API.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения;
//   - подключение middleware (логирование запросов).
package api

import (
	"encoding/json"
	"net/http"

	"github.com/IvanChernomyrdin/go-contact-api/internal/server/service"
	"github.com/IvanChernomyrdin/go-contact-api/internal/shared/logger"
	sharedModels "github.com/IvanChernomyrdin/go-contact-api/internal/shared/models"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// Сообщения API зафиксированы контрактом (исходный сервис отдаёт
// ровно эти строки, клиенты на них завязаны).
const (
	MsgUserAdded         = "User added successfully!"
	MsgUsernameTaken     = "Username is taken!"
	MsgContactAdded      = "Contact added successfully!"
	MsgUserCannotBeFound = "User cannot be found"
	MsgContactDeleted    = "Contact deleted successfully!"
	MsgContactNotFound   = "Contact not found!"
	MsgNameRequired      = "Please provide a name for search"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок.
//
// Методы Handler используются роутером для обработки HTTP-запросов.
type Handler struct {
	Svc *service.Services
	Log *logger.HTTPLogger
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
//
// svc — набор сервисов приложения,
// log — логгер.
func NewHandler(svc *service.Services, log *logger.HTTPLogger) *Handler {
	return &Handler{
		Svc: svc,
		Log: log,
	}
}

// Вспомогательная функция вывода конверта {"message": ...}
// Используется и для успешных операций записи, и для ошибок.
func WriteMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(sharedModels.MessageResponse{
		Message: message,
	})
}

// Вспомогательная функция вывода произвольного JSON-ответа
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
