// Package api содержит HTTP-клиент для взаимодействия с сервером Contact API.
//
// Клиент инкапсулирует базовый URL сервера и настроенный http.Client,
// предоставляя удобные методы для отправки JSON-запросов (POST/GET/DELETE).
//
// Особенности:
//   - baseURL нормализуется (обрезаются завершающие "/").
//   - По умолчанию добавляется заголовок Accept: application/json.
//   - Заголовок Content-Type: application/json добавляется только при наличии тела запроса.
//   - Пустое тело ответа (EOF при декодировании) не считается ошибкой.
//   - При ошибочных ответах (не 2xx) возвращается ошибка с текстом тела ответа
//     (если тело пустое — используется res.Status).
//
// Проверка TLS-сертификата по умолчанию включена; InsecureSkipVerify
// активируется только явно (insecure=true, флаг --insecure в CLI) и
// допустим только для разработки и локального окружения.
package api

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client реализует HTTP-клиент для общения с сервером.
//
// Поля:
//   - baseURL: базовый адрес сервера без завершающего слэша.
//   - http: настроенный http.Client (таймаут, транспорт, TLS).
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient создаёт новый HTTP-клиент для общения с сервером.
//
// Параметры:
//   - baseURL: базовый адрес сервера (например: "http://127.0.0.1:8080").
//   - insecure: отключает проверку TLS-сертификата (самоподписанные
//     сертификаты dev-окружения); в остальных случаях должен быть false.
//
// Поведение:
//   - обрезает завершающий "/" у baseURL;
//   - создаёт http.Client с таймаутом 10 секунд.
func NewClient(baseURL string, insecure bool) *Client {
	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}
	if insecure {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // только для dev
		}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// readAPIErrorBody читает тело ответа сервера и возвращает ошибку с текстом тела.
//
// Используется в случае HTTP-ошибок (не 2xx). Сервер отдаёт ошибки конвертом
// {"message": "..."}; если из тела удаётся достать message — возвращаем его,
// иначе сырой текст тела, иначе res.Status.
func readAPIErrorBody(res *http.Response) error {
	raw, _ := io.ReadAll(res.Body)

	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Message != "" {
		return errors.New(envelope.Message)
	}

	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		msg = res.Status
	}
	return errors.New(msg)
}

// decodeJSONOrOK декодирует JSON из r в resp.
//
// Если resp == nil — функция ничего не делает и возвращает nil.
// Если тело ответа пустое и json.Decoder вернул io.EOF,
// это НЕ считается ошибкой и возвращается nil.
func decodeJSONOrOK(r io.Reader, resp any) error {
	if resp == nil {
		return nil
	}
	err := json.NewDecoder(r).Decode(resp)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// PostJSON выполняет POST-запрос к серверу, сериализуя req в JSON.
//
// Параметры:
//   - path: путь относительно baseURL (например: "/add_user").
//   - req: объект для сериализации в JSON. Если req == nil, тело не отправляется
//     и Content-Type не устанавливается.
//   - resp: указатель на структуру/объект для декодирования JSON-ответа.
//     Если resp == nil, тело ответа не декодируется.
//
// Обработка ответа:
//   - 2xx: успех, декодирует JSON в resp (если resp != nil); EOF не ошибка
//   - не 2xx: возвращает ошибку с message из тела ответа (или res.Status)
func (c *Client) PostJSON(path string, req any, resp any) error {
	var buf bytes.Buffer
	if req != nil {
		if err := json.NewEncoder(&buf).Encode(req); err != nil {
			return err
		}
	}

	r, err := http.NewRequest(http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	r.Header.Set("Accept", "application/json")
	if req != nil {
		r.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(r)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return readAPIErrorBody(res)
	}

	return decodeJSONOrOK(res.Body, resp)
}

// GetJSON выполняет GET-запрос к серверу и (опционально) декодирует JSON-ответ.
//
// Параметры:
//   - path: путь относительно baseURL (например: "/list_contacts").
//   - resp: указатель на структуру/объект для декодирования JSON-ответа.
//     Если resp == nil, тело ответа не декодируется.
func (c *Client) GetJSON(path string, resp any) error {
	r, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	r.Header.Set("Accept", "application/json")

	res, err := c.http.Do(r)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return readAPIErrorBody(res)
	}

	return decodeJSONOrOK(res.Body, resp)
}

// DeleteJSON выполняет DELETE-запрос к серверу и (опционально) декодирует JSON-ответ.
//
// Параметры:
//   - path: путь относительно baseURL (например: "/delete_contact/5").
//   - resp: указатель на структуру/объект для декодирования JSON-ответа.
//     Если resp == nil, тело ответа не декодируется.
func (c *Client) DeleteJSON(path string, resp any) error {
	r, err := http.NewRequest(http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	r.Header.Set("Accept", "application/json")

	res, err := c.http.Do(r)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return readAPIErrorBody(res)
	}

	return decodeJSONOrOK(res.Body, resp)
}
