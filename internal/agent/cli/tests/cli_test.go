package tests

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-contact-api/internal/agent/cli"
)

// запускаем команду и собираем stdout/stderr
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := cli.NewRootCmd("test", "today")

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// у root-команды зарегистрированы все подкоманды
func TestRootCmd_Subcommands(t *testing.T) {
	cmd := cli.NewRootCmd("test", "today")

	want := []string{
		"user-add", "user-list",
		"contact-add", "contact-list", "contact-get", "contact-delete", "contact-search",
		"version",
	}

	registered := map[string]bool{}
	for _, sub := range cmd.Commands() {
		registered[sub.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Fatalf("subcommand %q is not registered", name)
		}
	}
}

// version печатает версию и дату сборки
func TestVersionCmd(t *testing.T) {
	out, _, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "test") || !strings.Contains(out, "today") {
		t.Fatalf("unexpected version output: %q", out)
	}
}

// user-add с паролем флагом: сообщение сервера уходит в stdout
func TestUserAddCmd_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/add_user" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"User added successfully!"}`))
	}))
	defer srv.Close()

	out, _, err := runCommand(t,
		"user-add", "--server", srv.URL, "--username", "bob", "--password", "pw1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "User added successfully!") {
		t.Fatalf("unexpected output: %q", out)
	}
}

// обязательный флаг --username: без него команда падает
func TestUserAddCmd_MissingUsername(t *testing.T) {
	_, _, err := runCommand(t, "user-add", "--password", "pw1")
	if err == nil {
		t.Fatalf("expected error for missing --username")
	}
}

// ошибка сервера пробрасывается как ошибка команды с текстом message
func TestUserAddCmd_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Username is taken!"}`))
	}))
	defer srv.Close()

	_, _, err := runCommand(t,
		"user-add", "--server", srv.URL, "--username", "bob", "--password", "pw1")
	if err == nil || !strings.Contains(err.Error(), "Username is taken!") {
		t.Fatalf("expected 'Username is taken!' error, got %v", err)
	}
}

// contact-list печатает контакты; пустой список — "no contacts"
func TestContactListCmd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/list_contacts":
			_, _ = w.Write([]byte(`{"contacts":[{"id":10,"user_id":1,"name":"Jane","surname":"Doe","phone_number":"12345"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	out, _, err := runCommand(t, "contact-list", "--server", srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Jane Doe") || !strings.Contains(out, "12345") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestContactListCmd_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"contacts":[]}`))
	}))
	defer srv.Close()

	out, _, err := runCommand(t, "contact-list", "--server", srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "no contacts") {
		t.Fatalf("unexpected output: %q", out)
	}
}

// contact-delete по несуществующему id возвращает ошибку сервера
func TestContactDeleteCmd_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Contact not found!"}`))
	}))
	defer srv.Close()

	_, _, err := runCommand(t, "contact-delete", "--server", srv.URL, "--id", "404")
	if err == nil || !strings.Contains(err.Error(), "Contact not found!") {
		t.Fatalf("expected 'Contact not found!' error, got %v", err)
	}
}

// contact-search требует --name
func TestContactSearchCmd_MissingName(t *testing.T) {
	_, _, err := runCommand(t, "contact-search")
	if err == nil {
		t.Fatalf("expected error for missing --name")
	}
}
