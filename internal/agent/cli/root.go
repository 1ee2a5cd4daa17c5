// Package cli реализует командный интерфейс (CLI) клиентского приложения Contact API.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// App содержит состояние CLI-приложения, разделяемое между командами.
//
// В структуре хранятся параметры подключения к серверу.
// Экземпляр App создаётся при построении root-команды и передаётся в подкоманды.
type App struct {
	// ServerURL — базовый URL сервера Contact API (например, "http://127.0.0.1:8080").
	ServerURL string
	// Insecure отключает проверку TLS-сертификата сервера
	// (только для dev-окружений с самоподписанным сертификатом).
	Insecure bool
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{
		ServerURL: "http://127.0.0.1:8080",
	}

	cmd := &cobra.Command{
		Use:   "contactcli",
		Short: "Contact API CLI — клиент телефонной книги",
		Long: `Contact API CLI.

Команды:
  user-add        Создать пользователя
  user-list       Список пользователей
  contact-add     Создать контакт
  contact-list    Список контактов
  contact-get     Получить контакт по id
  contact-delete  Удалить контакт по id
  contact-search  Поиск контактов по имени
  version         Версия и дата сборки

Примеры:

Создание пользователя (пароль запрашивается скрыто):
  contactcli user-add --username bob

Создание контакта:
  contactcli contact-add --user-id 1 --name Jane --surname Doe --phone 12345

Поиск:
  contactcli contact-search --name ali
`,
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", "http://127.0.0.1:8080", "server base URL")
	cmd.PersistentFlags().BoolVar(&app.Insecure, "insecure", false, "skip TLS certificate verification (dev only)")

	cmd.AddCommand(NewUserAddCmd(app))
	cmd.AddCommand(NewUserListCmd(app))
	cmd.AddCommand(NewContactAddCmd(app))
	cmd.AddCommand(NewContactListCmd(app))
	cmd.AddCommand(NewContactGetCmd(app))
	cmd.AddCommand(NewContactDeleteCmd(app))
	cmd.AddCommand(NewContactSearchCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
