package main

import (
	"net/http"
	"os"
	"strings"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	"todo-list-api/handlers"
	"todo-list-api/utilities"
)

// NewRouter monta todas as rotas da API. As rotas de tarefas são expostas
// em dois prefixos (/api/tasks e /tasks) por compatibilidade com clientes
// antigos; todas passam pelo guard de autenticação.
func NewRouter(app *handlers.App) http.Handler {
	r := mux.NewRouter()

	// Logging global em todas as rotas
	r.Use(handlers.LoggingMiddleware)

	// >>> Swagger UI em /api-docs <<<
	r.HandleFunc("/api-docs/doc.json", ServeSwaggerDoc).Methods("GET")
	r.PathPrefix("/api-docs/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/api-docs/doc.json"),
	))

	// rota de teste de auth
	r.HandleFunc("/api/me", app.AuthMiddleware(app.Me)).Methods("GET")

	// rotas de tarefas
	for _, prefix := range []string{"/api/tasks", "/tasks"} {
		s := r.PathPrefix(prefix).Subrouter()
		s.HandleFunc("", app.AuthMiddleware(app.GetAllTasks)).Methods("GET")
		s.HandleFunc("/", app.AuthMiddleware(app.GetAllTasks)).Methods("GET")
		s.HandleFunc("", app.AuthMiddleware(app.CreateTask)).Methods("POST")
		s.HandleFunc("/", app.AuthMiddleware(app.CreateTask)).Methods("POST")
		s.HandleFunc("/{id}", app.AuthMiddleware(app.UpdateTask)).Methods("PUT")
		s.HandleFunc("/{id}", app.AuthMiddleware(app.DeleteTask)).Methods("DELETE")
	}

	// health check
	r.HandleFunc("/api/ping", handlers.Ping).Methods("GET")

	// Configuração do CORS
	headers := gorillahandlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type", "Authorization"})
	methods := gorillahandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})

	allowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if allowedOriginsEnv == "" {
		allowedOrigins = []string{"*"}
		utilities.LogInfo("CORS_ALLOWED_ORIGINS não definida, permitindo todas as origens ('*'). Defina para maior segurança em produção.")
	} else {
		allowedOrigins = strings.Split(allowedOriginsEnv, ",")
	}
	origins := gorillahandlers.AllowedOrigins(allowedOrigins)

	return gorillahandlers.CORS(headers, methods, origins)(r)
}
