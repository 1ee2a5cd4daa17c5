package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/IvanChernomyrdin/go-contact-api/internal/agent/api"
	sharedModels "github.com/IvanChernomyrdin/go-contact-api/internal/shared/models"
)

func TestAddUser(t *testing.T) {
	var gotBody sharedModels.AddUserRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/add_user" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"User added successfully!"}`))
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL, false)

	resp, err := client.AddUser(sharedModels.AddUserRequest{
		Username: "bob",
		Password: "pw1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Message != "User added successfully!" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if gotBody.Username != "bob" || gotBody.Password != "pw1" {
		t.Fatalf("unexpected request body: %+v", gotBody)
	}
}

func TestListUsers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"users":[{"id":1,"username":"bob"},{"id":2,"username":"alice"}]}`))
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL, false)

	resp, err := client.ListUsers()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Users) != 2 || resp.Users[0].Username != "bob" {
		t.Fatalf("unexpected users: %+v", resp.Users)
	}
}
