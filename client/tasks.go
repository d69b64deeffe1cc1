package client

import (
	"context"
	"sync"

	"todo-list-api/models"
)

// TaskView é o item mantido em cache pelo cliente: a tarefa como veio do
// servidor mais o alias dueDate usado pelos componentes de UI.
type TaskView struct {
	models.Task
	DueDate *string `json:"dueDate"`
}

func newTaskView(t models.Task) TaskView {
	return TaskView{Task: t, DueDate: t.DueDate}
}

// TasksStore espelha a store de tarefas do frontend: lista em memória com
// a última resposta bem-sucedida do List, flag de loading e último erro.
// Nenhuma mutação é otimista: a lista só muda depois que o servidor
// confirma; em falha, o estado anterior fica intacto e o erro é guardado.
type TasksStore struct {
	api *APIClient

	mu      sync.Mutex
	tasks   []TaskView
	loading bool
	err     error
}

func NewTasksStore(api *APIClient) *TasksStore {
	return &TasksStore{api: api}
}

// Fetch substitui a lista pela ordem do servidor. Em falha a lista
// anterior é mantida e o erro registrado; não há retry automático.
func (s *TasksStore) Fetch(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	tasks, err := s.api.ListTasks(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err
		return
	}
	views := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, newTaskView(t))
	}
	s.tasks = views
}

// Create envia a tarefa e, confirmada pelo servidor, anexa ao cache.
func (s *TasksStore) Create(ctx context.Context, req models.CreateTaskRequest) {
	s.mu.Lock()
	s.err = nil
	s.mu.Unlock()

	task, err := s.api.CreateTask(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.err = err
		return
	}
	s.tasks = append(s.tasks, newTaskView(*task))
}

// Toggle inverte o completed da tarefa via atualização parcial e troca o
// item do cache pela linha confirmada.
func (s *TasksStore) Toggle(ctx context.Context, id int64) {
	s.mu.Lock()
	s.err = nil
	var current *TaskView
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			current = &s.tasks[i]
			break
		}
	}
	if current == nil {
		s.mu.Unlock()
		return
	}
	completed := current.Completed
	s.mu.Unlock()

	patch := models.TaskPatch{Completed: models.FieldOf(!completed)}
	updated, err := s.api.UpdateTask(ctx, id, patch)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.err = err
		return
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i] = newTaskView(*updated)
			break
		}
	}
}

// Remove deleta a tarefa e, confirmada a remoção, filtra o cache.
func (s *TasksStore) Remove(ctx context.Context, id int64) {
	s.mu.Lock()
	s.err = nil
	s.mu.Unlock()

	err := s.api.DeleteTask(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.err = err
		return
	}
	filtered := s.tasks[:0:0]
	for _, t := range s.tasks {
		if t.ID != id {
			filtered = append(filtered, t)
		}
	}
	s.tasks = filtered
}

// Tasks devolve uma cópia da lista em cache.
func (s *TasksStore) Tasks() []TaskView {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]TaskView, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Loading informa se há um Fetch em andamento.
func (s *TasksStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err devolve o último erro registrado por uma ação.
func (s *TasksStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
