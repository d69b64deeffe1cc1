// Package client é a contraparte Go das stores do frontend: estado de
// autenticação, estado de tarefas e o cliente HTTP que fala com a API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"todo-list-api/models"
)

// DefaultBaseURL é usada quando API_BASE_URL não está definida.
const DefaultBaseURL = "http://localhost:8080/api"

// SessionProvider dá acesso à sessão corrente para injetar o bearer token.
type SessionProvider interface {
	Session() *Session
}

// Session é a projeção local do estado do provedor de identidade.
type Session struct {
	UserID      string
	Email       string
	AccessToken string
}

// APIClient chama a API de tarefas. Cada método espelha uma chamada fetch
// do frontend, com o Authorization montado a partir da sessão.
type APIClient struct {
	baseURL  string
	http     *http.Client
	sessions SessionProvider
}

// NewAPIClient cria o cliente. baseURL vazia cai para API_BASE_URL e, na
// ausência dela, para DefaultBaseURL.
func NewAPIClient(baseURL string, sessions SessionProvider) *APIClient {
	if baseURL == "" {
		baseURL = os.Getenv("API_BASE_URL")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &APIClient{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		http:     &http.Client{},
		sessions: sessions,
	}
}

// APIStatusError é devolvido quando a API responde com status de erro.
type APIStatusError struct {
	Code int
}

func (e *APIStatusError) Error() string {
	return fmt.Sprintf("status %d", e.Code)
}

func (c *APIClient) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s := c.sessions.Session(); s != nil && s.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.AccessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &APIStatusError{Code: resp.StatusCode}
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// ListTasks busca as tarefas do usuário na ordem do servidor.
func (c *APIClient) ListTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, fmt.Errorf("erro ao buscar tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask cria uma tarefa e devolve a linha confirmada pelo servidor.
func (c *APIClient) CreateTask(ctx context.Context, req models.CreateTaskRequest) (*models.Task, error) {
	var task models.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", req, &task); err != nil {
		return nil, fmt.Errorf("erro ao criar task: %w", err)
	}
	return &task, nil
}

// UpdateTask envia uma atualização parcial e devolve a tarefa atualizada.
func (c *APIClient) UpdateTask(ctx context.Context, id int64, patch models.TaskPatch) (*models.Task, error) {
	var task models.Task
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id), patch, &task); err != nil {
		return nil, fmt.Errorf("erro ao atualizar task: %w", err)
	}
	return &task, nil
}

// DeleteTask remove uma tarefa.
func (c *APIClient) DeleteTask(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil); err != nil {
		return fmt.Errorf("erro ao deletar task: %w", err)
	}
	return nil
}
