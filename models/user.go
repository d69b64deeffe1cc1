package models

// User é a projeção do usuário resolvido pelo provedor de identidade.
// É o valor anexado ao contexto da requisição pelo middleware de auth e
// devolvido pela rota /api/me.
type User struct {
	UID   string `json:"id"`
	Email string `json:"email"`
}
