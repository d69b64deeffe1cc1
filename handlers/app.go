package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"todo-list-api/models"
	"todo-list-api/utilities"
)

// TaskStore é a dependência de persistência dos handlers. Todas as
// operações recebem o uid do usuário autenticado e nunca tocam tarefas de
// outros donos.
type TaskStore interface {
	ListByUser(ctx context.Context, userID string) ([]models.Task, error)
	Create(ctx context.Context, userID string, req models.CreateTaskRequest) (*models.Task, error)
	Update(ctx context.Context, userID string, id int64, patch models.TaskPatch) (*models.Task, error)
	Delete(ctx context.Context, userID string, id int64) error
}

// TokenVerifier resolve um bearer token para o usuário dono da sessão.
// Token recusado deve vir embrulhando firebase.ErrInvalidToken; qualquer
// outro erro é tratado como falha do provedor.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*models.User, error)
}

// App agrupa as dependências dos handlers. Os clientes são construídos no
// main e passados explicitamente; não há estado de pacote.
type App struct {
	Store    TaskStore
	Verifier TokenVerifier
}

func NewApp(store TaskStore, verifier TokenVerifier) *App {
	return &App{Store: store, Verifier: verifier}
}

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		utilities.LogError(err, "Erro ao serializar resposta JSON")
	}
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// respondStoreError devolve 500 com a mensagem amigável e o detalhe do
// erro do banco, como o contrato pede para falhas de store.
func respondStoreError(w http.ResponseWriter, message string, err error) {
	respondJSON(w, http.StatusInternalServerError, map[string]string{
		"message": message,
		"details": err.Error(),
	})
}
