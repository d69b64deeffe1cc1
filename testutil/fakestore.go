// Package testutil fornece dublês em memória para os testes: store de
// tarefas, verificador de token e provedor de identidade falsos, com
// injeção de erro por operação.
package testutil

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"todo-list-api/database"
	"todo-list-api/models"
)

// FakeTaskStore implementa handlers.TaskStore em memória, reproduzindo o
// escopo por usuário e a ordenação do Postgres.
type FakeTaskStore struct {
	mu     sync.Mutex
	nextID int64
	tasks  []models.Task

	// Erros injetados por operação.
	ListErr   error
	CreateErr error
	UpdateErr error
	DeleteErr error
}

func NewFakeTaskStore() *FakeTaskStore {
	return &FakeTaskStore{nextID: 1}
}

// Seed insere uma tarefa diretamente, com id atribuído pelo fake.
func (f *FakeTaskStore) Seed(task models.Task) models.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	task.ID = f.nextID
	f.nextID++
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}
	f.tasks = append(f.tasks, task)
	return task
}

// Get devolve uma cópia da tarefa por id, para inspeção nos testes.
func (f *FakeTaskStore) Get(id int64) (models.Task, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

// Len devolve o total de tarefas guardadas, de todos os usuários.
func (f *FakeTaskStore) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tasks)
}

func (f *FakeTaskStore) ListByUser(ctx context.Context, userID string) ([]models.Task, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	out := []models.Task{}
	for _, t := range f.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}

	// Mesma ordenação delegada ao banco na implementação real.
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		if c := compareNullsLast(a.DueDate, b.DueDate); c != 0 {
			return c < 0
		}
		if c := comparePriority(a.Priority, b.Priority); c != 0 {
			return c < 0
		}
		return a.ID < b.ID
	})
	return out, nil
}

// compareNullsLast ordena datas YYYY-MM-DD ascendentes com nulls por último.
func compareNullsLast(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return strings.Compare(*a, *b)
}

func comparePriority(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	}
	return 0
}

func (f *FakeTaskStore) Create(ctx context.Context, userID string, req models.CreateTaskRequest) (*models.Task, error) {
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	task := models.Task{
		ID:          f.nextID,
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Completed:   req.Completed,
		CreatedAt:   time.Now(),
	}
	f.nextID++
	f.tasks = append(f.tasks, task)
	return &task, nil
}

func (f *FakeTaskStore) Update(ctx context.Context, userID string, id int64, patch models.TaskPatch) (*models.Task, error) {
	if f.UpdateErr != nil {
		return nil, f.UpdateErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.tasks {
		if f.tasks[i].ID != id || f.tasks[i].UserID != userID {
			continue
		}
		t := &f.tasks[i]
		if patch.Title.Set {
			if !patch.Title.Valid {
				// Coluna NOT NULL: a implementação real devolveria erro
				// de constraint do banco.
				return nil, errors.New("null value in column \"title\" violates not-null constraint")
			}
			t.Title = strings.TrimSpace(patch.Title.Value)
		}
		if patch.Description.Set {
			t.Description = patch.Description.Ptr()
		}
		if patch.DueDate.Set {
			t.DueDate = patch.DueDate.Ptr()
		}
		if patch.Priority.Set {
			t.Priority = patch.Priority.Ptr()
		}
		if patch.Completed.Set {
			t.Completed = patch.Completed.Valid && patch.Completed.Value
		}
		clone := *t
		return &clone, nil
	}
	return nil, database.ErrTaskNotFound
}

func (f *FakeTaskStore) Delete(ctx context.Context, userID string, id int64) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	filtered := f.tasks[:0:0]
	for _, t := range f.tasks {
		if t.ID == id && t.UserID == userID {
			continue
		}
		filtered = append(filtered, t)
	}
	f.tasks = filtered
	return nil
}
