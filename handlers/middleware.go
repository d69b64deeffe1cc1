package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"todo-list-api/firebase"
	"todo-list-api/models"
	"todo-list-api/utilities"
)

type contextKey string

const userContextKey = contextKey("user")

// LoggingMiddleware registra método, caminho, status e duração de cada
// requisição HTTP
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		utilities.LogRequest(r.Method, r.URL.Path, r.RemoteAddr, rw.statusCode, duration)
	})
}

// responseWriter captura o status code escrito pelo handler
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// AuthMiddleware valida o bearer token em toda rota protegida e anexa o
// usuário resolvido ao contexto da requisição. Não há retry: token ausente
// ou recusado é 401, falha do provedor é 500.
func (a *App) AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			respondMessage(w, http.StatusUnauthorized, "No token provided")
			return
		}

		token := strings.Replace(header, "Bearer ", "", 1)
		user, err := a.Verifier.VerifyToken(r.Context(), token)
		if err != nil {
			if errors.Is(err, firebase.ErrInvalidToken) {
				utilities.LogDebug("Token recusado pelo provedor de identidade: %v", err)
				respondMessage(w, http.StatusUnauthorized, "Invalid token")
				return
			}
			utilities.LogError(err, "Falha no provedor de identidade")
			respondMessage(w, http.StatusInternalServerError, "Auth failure")
			return
		}
		if user == nil {
			respondMessage(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next(w, r.WithContext(ctx))
	}
}

// UserFromContext devolve o usuário anexado pelo AuthMiddleware, ou nil se
// a requisição não passou pelo guard.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userContextKey).(*models.User)
	return user
}
