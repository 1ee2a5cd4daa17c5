package tests

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/go-contact-api/internal/server/api"
	"github.com/IvanChernomyrdin/go-contact-api/internal/server/config"
	"github.com/IvanChernomyrdin/go-contact-api/internal/server/service"
	"github.com/IvanChernomyrdin/go-contact-api/internal/server/service/mocks"
	"github.com/IvanChernomyrdin/go-contact-api/internal/shared/logger"
)

// тестовая сборка хендлера: мок-репозитории + настоящий сервисный слой
func newTestHandler(t *testing.T) (*api.Handler, *mocks.MockUsersRepo, *mocks.MockContactsRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)

	users := mocks.NewMockUsersRepo(ctrl)
	contacts := mocks.NewMockContactsRepo(ctrl)

	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	svc := service.NewServices(service.Repositories{
		Users:    users,
		Contacts: contacts,
	}, cfg)

	h := api.NewHandler(svc, &logger.HTTPLogger{Logger: zap.NewNop()})

	return h, users, contacts
}

// запрос через полный роутер (нужен для путей с {id})
func doRequest(t *testing.T, h *api.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(api.ContentType, api.JsonContentType)

	rec := httptest.NewRecorder()
	api.NewRouter(h, 0).ServeHTTP(rec, req)

	return rec
}

// вариант с лимитом тела запроса
func doRequestWithBodyLimit(t *testing.T, h *api.Handler, maxBodyBytes int64, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(api.ContentType, api.JsonContentType)

	rec := httptest.NewRecorder()
	api.NewRouter(h, maxBodyBytes).ServeHTTP(rec, req)

	return rec
}

// достаём message из конверта {"message": ...}
func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.Message
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()

	if rec.Code != want {
		t.Fatalf("expected status %d, got %d (body %s)", want, rec.Code, rec.Body.String())
	}
}

func requireMessage(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()

	if got := decodeMessage(t, rec); got != want {
		t.Fatalf("expected message %q, got %q", want, got)
	}
}

func requireContentType(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()

	if got := rec.Header().Get(api.ContentType); got != api.JsonContentType {
		t.Fatalf("expected Content-Type %q, got %q", api.JsonContentType, got)
	}
}
