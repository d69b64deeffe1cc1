package testutil

import (
	"context"
	"fmt"

	"todo-list-api/firebase"
	"todo-list-api/models"
)

// FakeVerifier resolve tokens a partir de um mapa fixo. Token desconhecido
// embrulha firebase.ErrInvalidToken, como o verificador real; Err simula
// falha do provedor (vira 500 no middleware).
type FakeVerifier struct {
	Users map[string]*models.User
	Err   error
}

func NewFakeVerifier() *FakeVerifier {
	return &FakeVerifier{Users: make(map[string]*models.User)}
}

// Allow registra um token aceito para o usuário dado.
func (f *FakeVerifier) Allow(token, uid, email string) {
	f.Users[token] = &models.User{UID: uid, Email: email}
}

func (f *FakeVerifier) VerifyToken(ctx context.Context, token string) (*models.User, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	user, ok := f.Users[token]
	if !ok {
		return nil, fmt.Errorf("%w: token não reconhecido", firebase.ErrInvalidToken)
	}
	return user, nil
}
