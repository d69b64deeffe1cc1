package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"todo-list-api/models"
)

// Colunas da tabela na ordem esperada por scanTask.
const taskColumns = "id, user_id, title, description, due_date, priority, completed, created_at"

// Datas trafegam como string YYYY-MM-DD na API e como DATE no banco.
const dateLayout = "2006-01-02"

// TaskStore executa as operações de tarefas no Postgres. Toda query filtra
// por user_id na própria instrução, então o isolamento entre usuários é
// atômico por statement.
type TaskStore struct {
	db *sql.DB
}

// NewTaskStore cria o store sobre uma conexão já aberta. A conexão é
// compartilhada entre requisições; o *sql.DB cuida do pool.
func NewTaskStore(db *sql.DB) *TaskStore {
	return &TaskStore{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	var (
		task     models.Task
		desc     sql.NullString
		due      sql.NullTime
		priority sql.NullInt64
	)

	err := row.Scan(&task.ID, &task.UserID, &task.Title, &desc, &due,
		&priority, &task.Completed, &task.CreatedAt)
	if err != nil {
		return nil, err
	}

	if desc.Valid {
		task.Description = &desc.String
	}
	if due.Valid {
		d := due.Time.Format(dateLayout)
		task.DueDate = &d
	}
	if priority.Valid {
		p := int(priority.Int64)
		task.Priority = &p
	}
	return &task, nil
}

// ListByUser devolve as tarefas do usuário na ordem do contrato:
// pendentes antes de concluídas, depois data de vencimento (nulls por
// último), prioridade (nulls por último) e id. Nunca devolve nil.
func (s *TaskStore) ListByUser(ctx context.Context, userID string) ([]models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE user_id = $1
		ORDER BY completed ASC,
			due_date ASC NULLS LAST,
			priority ASC NULLS LAST,
			id ASC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create insere a tarefa com o dono vindo do token autenticado. Valores de
// dono enviados pelo cliente nunca chegam aqui. Devolve a linha criada com
// id e created_at atribuídos pelo banco.
func (s *TaskStore) Create(ctx context.Context, userID string, req models.CreateTaskRequest) (*models.Task, error) {
	query := `INSERT INTO tasks (user_id, title, description, due_date, priority, completed)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + taskColumns

	row := s.db.QueryRowContext(ctx, query,
		userID,
		strings.TrimSpace(req.Title),
		req.Description,
		req.DueDate,
		req.Priority,
		req.Completed,
	)
	return scanTask(row)
}

// Update aplica uma atualização parcial: só os campos presentes no patch
// entram no SET, montado dinamicamente como no restante do projeto. O WHERE
// casa id e user_id juntos; sem linha correspondente, ErrTaskNotFound.
func (s *TaskStore) Update(ctx context.Context, userID string, id int64, patch models.TaskPatch) (*models.Task, error) {
	// Corpo sem nenhum campo: nada a gravar, devolve a linha atual para
	// manter o contrato (200 se for do usuário, 404 caso contrário).
	if patch.Empty() {
		return s.getByID(ctx, userID, id)
	}

	query := "UPDATE tasks SET "
	params := []interface{}{}
	paramCount := 1

	if patch.Title.Set {
		title := patch.Title.Ptr()
		if title != nil {
			t := strings.TrimSpace(*title)
			title = &t
		}
		query += fmt.Sprintf("title = $%d, ", paramCount)
		params = append(params, title)
		paramCount++
	}

	if patch.Description.Set {
		query += fmt.Sprintf("description = $%d, ", paramCount)
		params = append(params, patch.Description.Ptr())
		paramCount++
	}

	if patch.DueDate.Set {
		query += fmt.Sprintf("due_date = $%d, ", paramCount)
		params = append(params, patch.DueDate.Ptr())
		paramCount++
	}

	if patch.Priority.Set {
		query += fmt.Sprintf("priority = $%d, ", paramCount)
		params = append(params, patch.Priority.Ptr())
		paramCount++
	}

	if patch.Completed.Set {
		query += fmt.Sprintf("completed = $%d, ", paramCount)
		params = append(params, patch.Completed.Valid && patch.Completed.Value)
		paramCount++
	}

	query = strings.TrimSuffix(query, ", ")
	query += fmt.Sprintf(" WHERE id = $%d AND user_id = $%d RETURNING %s",
		paramCount, paramCount+1, taskColumns)
	params = append(params, id, userID)

	task, err := scanTask(s.db.QueryRowContext(ctx, query, params...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

// Delete remove a tarefa do usuário. Remover um id inexistente não é erro:
// o delete é idempotente e a resposta não distingue os casos.
func (s *TaskStore) Delete(ctx context.Context, userID string, id int64) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM tasks WHERE id = $1 AND user_id = $2", id, userID)
	return err
}

func (s *TaskStore) getByID(ctx context.Context, userID string, id int64) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND user_id = $2`
	task, err := scanTask(s.db.QueryRowContext(ctx, query, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}
