package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"todo-list-api/database"
	"todo-list-api/firebase"
	"todo-list-api/handlers"
	"todo-list-api/utilities"
)

func main() {
	utilities.InitLogger()

	if err := godotenv.Load(); err != nil {
		utilities.LogInfo("Arquivo .env não encontrado, usando as variáveis de ambiente do processo")
	}

	db, err := database.ConnectPostgres()
	if err != nil {
		log.Fatalf("Erro ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		log.Fatalf("Erro ao preparar o schema do banco: %v", err)
	}

	verifier, err := firebase.NewClient(context.Background(), os.Getenv("FIREBASE_CREDENTIALS_PATH"))
	if err != nil {
		log.Fatalf("Erro ao inicializar o provedor de identidade: %v", err)
	}

	// Dependências construídas aqui e injetadas nos handlers
	app := handlers.NewApp(database.NewTaskStore(db), verifier)
	router := NewRouter(app)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	utilities.LogInfo("Servidor iniciado na porta %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
