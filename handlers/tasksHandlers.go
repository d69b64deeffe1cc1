package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"todo-list-api/database"
	"todo-list-api/models"
	"todo-list-api/utilities"
)

// GetAllTasks lista as tarefas apenas do usuário autenticado, na ordem
// definida pelo banco: pendentes primeiro, depois vencimento, prioridade e
// id. Resposta sempre é um array, possivelmente vazio.
func (a *App) GetAllTasks(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		respondMessage(w, http.StatusUnauthorized, "Usuário não autenticado")
		return
	}

	utilities.LogDebug("GET /tasks - listando tarefas para user %s", user.UID)

	tasks, err := a.Store.ListByUser(r.Context(), user.UID)
	if err != nil {
		utilities.LogError(err, "Erro ao buscar tarefas")
		respondStoreError(w, "Erro ao buscar tarefas", err)
		return
	}

	respondJSON(w, http.StatusOK, tasks)
}

// CreateTask cria uma tarefa associada ao usuário autenticado. O título é
// obrigatório; o dono vem sempre do token, nunca do corpo.
func (a *App) CreateTask(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		respondMessage(w, http.StatusUnauthorized, "Usuário não autenticado")
		return
	}

	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utilities.LogError(err, "Erro ao decodificar JSON da tarefa")
		respondMessage(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		utilities.LogDebug("createTask - título vazio")
		respondMessage(w, http.StatusBadRequest, "Título é obrigatório")
		return
	}

	task, err := a.Store.Create(r.Context(), user.UID, req)
	if err != nil {
		utilities.LogError(err, "Erro ao criar tarefa")
		respondStoreError(w, "Erro ao criar tarefa", err)
		return
	}

	utilities.LogInfo("Tarefa criada com sucesso: %s (ID: %d)", task.Title, task.ID)
	respondJSON(w, http.StatusCreated, task)
}

// UpdateTask aplica uma atualização parcial em uma tarefa do usuário
// autenticado. Campo ausente não muda; campo com null limpa. Tarefa
// inexistente ou de outro dono responde 404, sem distinguir os casos.
func (a *App) UpdateTask(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		respondMessage(w, http.StatusUnauthorized, "Usuário não autenticado")
		return
	}

	id, err := parseTaskID(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "ID inválido")
		return
	}

	utilities.LogDebug("PUT /tasks/:id atualizando id %d para user %s", id, user.UID)

	var patch models.TaskPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utilities.LogError(err, "Erro ao decodificar JSON de atualização")
		respondMessage(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	task, err := a.Store.Update(r.Context(), user.UID, id, patch)
	if errors.Is(err, database.ErrTaskNotFound) {
		respondMessage(w, http.StatusNotFound, "Tarefa não encontrada")
		return
	}
	if err != nil {
		utilities.LogError(err, "Erro ao atualizar tarefa")
		respondStoreError(w, "Erro ao atualizar tarefa", err)
		return
	}

	utilities.LogInfo("Tarefa atualizada com sucesso: %d", task.ID)
	respondJSON(w, http.StatusOK, task)
}

// DeleteTask remove uma tarefa do usuário autenticado. A remoção é
// idempotente: id inexistente recebe a mesma confirmação.
func (a *App) DeleteTask(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		respondMessage(w, http.StatusUnauthorized, "Usuário não autenticado")
		return
	}

	id, err := parseTaskID(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "ID inválido")
		return
	}

	utilities.LogDebug("DELETE /tasks/:id deletando id %d para user %s", id, user.UID)

	if err := a.Store.Delete(r.Context(), user.UID, id); err != nil {
		utilities.LogError(err, "Erro ao deletar tarefa")
		respondStoreError(w, "Erro ao deletar tarefa", err)
		return
	}

	utilities.LogInfo("Tarefa excluída com sucesso: %d", id)
	respondMessage(w, http.StatusOK, "Deleted")
}

// Me devolve o usuário resolvido pelo guard; serve como rota de teste de
// autenticação.
func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		respondMessage(w, http.StatusUnauthorized, "Usuário não autenticado")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

// Ping é o health check, sem autenticação.
func Ping(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// parseTaskID valida o id de tarefa vindo do path: inteiro positivo.
func parseTaskID(r *http.Request) (int64, error) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}
