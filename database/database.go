package database

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"

	"todo-list-api/utilities"
)

// ConnectPostgres abre a conexão com o Postgres hospedado a partir das
// variáveis de ambiente e valida com um ping.
func ConnectPostgres() (*sql.DB, error) {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	sslmode := os.Getenv("DB_SSLMODE")

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir conexão com o banco de dados: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("erro ao conectar ao banco de dados: %w", err)
	}

	utilities.LogInfo("Conectado ao PostgreSQL com sucesso")
	return db, nil
}

// EnsureSchema garante a tabela de tarefas. Os valores atribuídos pelo
// banco (id serial, created_at) fazem parte do contrato da API.
func EnsureSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS tasks (
		id SERIAL PRIMARY KEY,
		user_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		due_date DATE,
		priority INT,
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_tasks_user_id ON tasks (user_id);`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("erro ao inicializar o schema do banco: %w", err)
	}
	return nil
}
