package models

import "time"

// Task representa uma tarefa pertencente a exatamente um usuário.
// O id e o created_at são atribuídos pelo banco; o user_id nunca aparece
// na resposta JSON.
type Task struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"-"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	DueDate     *string   `json:"due_date"`
	Priority    *int      `json:"priority"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateTaskRequest é o corpo aceito pelo POST /api/tasks.
// Atenção: a data chega como dueDate e é gravada/retornada como due_date.
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	Priority    *int    `json:"priority"`
	Completed   bool    `json:"completed"`
}

// TaskPatch é a atualização parcial do PUT /api/tasks/:id. Cada campo
// distingue três estados: ausente do corpo (não mexe), presente com null
// (limpeza deliberada) e presente com valor.
type TaskPatch struct {
	Title       Field[string] `json:"title,omitzero"`
	Description Field[string] `json:"description,omitzero"`
	DueDate     Field[string] `json:"dueDate,omitzero"`
	Priority    Field[int]    `json:"priority,omitzero"`
	Completed   Field[bool]   `json:"completed,omitzero"`
}

// Empty informa se nenhum campo veio no corpo da requisição.
func (p TaskPatch) Empty() bool {
	return !p.Title.Set && !p.Description.Set && !p.DueDate.Set &&
		!p.Priority.Set && !p.Completed.Set
}
