package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-contact-api/internal/server/middleware"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - middleware логирования для всех запросов;
//   - middleware лимита тела запроса (server.max_body_bytes, 0 — без лимита);
//   - Swagger UI на /swagger/*;
//   - семь публичных эндпоинтов API (пути зафиксированы контрактом,
//     без префикса версии).
func NewRouter(h *Handler, maxBodyBytes int64) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(h.Log))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// пользователи
	r.Post("/add_user", h.AddUser)
	r.Get("/list_users", h.ListUsers)

	// контакты
	r.Post("/add_contact", h.AddContact)
	r.Delete("/delete_contact/{id}", h.DeleteContact)
	r.Get("/list_contacts", h.ListContacts)
	r.Get("/get_contact/{id}", h.GetContact)
	r.Get("/search_contacts", h.SearchContacts)

	return r
}
