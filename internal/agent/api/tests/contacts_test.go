package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/IvanChernomyrdin/go-contact-api/internal/agent/api"
	sharedModels "github.com/IvanChernomyrdin/go-contact-api/internal/shared/models"
)

// тестовый сервер с минимальным набором эндпоинтов
func newContactsServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/add_contact", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Contact added successfully!"}`))
	})
	mux.HandleFunc("/list_contacts", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"contacts":[{"id":10,"user_id":1,"name":"Jane","surname":"Doe","phone_number":"12345"}]}`))
	})
	mux.HandleFunc("/get_contact/10", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":10,"user_id":1,"name":"Jane","surname":"Doe","phone_number":"12345"}`))
	})
	mux.HandleFunc("/delete_contact/10", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Contact deleted successfully!"}`))
	})
	mux.HandleFunc("/search_contacts", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("name") != "jane doe" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"Please provide a name for search"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"contacts":[]}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestAddContact(t *testing.T) {
	srv := newContactsServer(t)
	client := api.NewClient(srv.URL, false)

	resp, err := client.AddContact(sharedModels.AddContactRequest{
		UserID:      1,
		Name:        "Jane",
		Surname:     "Doe",
		PhoneNumber: "12345",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Message != "Contact added successfully!" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestListContacts(t *testing.T) {
	srv := newContactsServer(t)
	client := api.NewClient(srv.URL, false)

	resp, err := client.ListContacts()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Contacts) != 1 || resp.Contacts[0].PhoneNumber != "12345" {
		t.Fatalf("unexpected contacts: %+v", resp.Contacts)
	}
}

func TestGetContact(t *testing.T) {
	srv := newContactsServer(t)
	client := api.NewClient(srv.URL, false)

	c, err := client.GetContact(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != 10 || c.Name != "Jane" || c.PhoneNumber != "12345" {
		t.Fatalf("unexpected contact: %+v", c)
	}
}

func TestDeleteContact(t *testing.T) {
	srv := newContactsServer(t)
	client := api.NewClient(srv.URL, false)

	resp, err := client.DeleteContact(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Message != "Contact deleted successfully!" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

// имя с пробелом должно уйти экранированным query-параметром
func TestSearchContacts_EscapesName(t *testing.T) {
	srv := newContactsServer(t)
	client := api.NewClient(srv.URL, false)

	resp, err := client.SearchContacts("jane doe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Contacts == nil || len(resp.Contacts) != 0 {
		t.Fatalf("unexpected contacts: %+v", resp.Contacts)
	}
}
