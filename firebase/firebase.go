// Package firebase encapsula o provedor de identidade (Firebase Auth).
// A validação de token é totalmente delegada: nenhum JWT é interpretado
// localmente.
package firebase

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"todo-list-api/models"
	"todo-list-api/utilities"
)

// ErrInvalidToken marca um token recusado pelo provedor. Qualquer outro
// erro de VerifyToken é falha de infraestrutura e vira 500 no middleware.
var ErrInvalidToken = errors.New("token inválido")

// Client é o cliente de autenticação, construído uma única vez no main e
// injetado em quem precisa dele.
type Client struct {
	auth *auth.Client
}

// NewClient inicializa o app Firebase com o arquivo de credenciais e obtém
// o cliente de Auth.
func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	if credentialsFile == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS_PATH não está definido nas variáveis de ambiente")
	}

	opt := option.WithCredentialsFile(credentialsFile)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inicializar Firebase: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao obter cliente de Auth: %w", err)
	}

	utilities.LogInfo("Conexão com Firebase estabelecida com sucesso")
	return &Client{auth: authClient}, nil
}

// VerifyToken resolve o bearer token para o usuário dono da sessão.
func (c *Client) VerifyToken(ctx context.Context, token string) (*models.User, error) {
	decoded, err := c.auth.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	email, _ := decoded.Claims["email"].(string)
	return &models.User{UID: decoded.UID, Email: email}, nil
}
