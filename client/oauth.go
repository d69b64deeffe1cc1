package client

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/oauth2"
)

// AuthEvent identifica mudanças de estado emitidas pelo provedor.
type AuthEvent string

const (
	EventSignedIn  AuthEvent = "SIGNED_IN"
	EventSignedOut AuthEvent = "SIGNED_OUT"
)

// IdentityProvider é o provedor de identidade visto pelo cliente. O fluxo
// OAuth acontece fora do processo (navegador); o provedor só materializa a
// sessão quando o redirect volta.
type IdentityProvider interface {
	// CurrentSession devolve a sessão corrente, nil se anônimo.
	CurrentSession(ctx context.Context) (*Session, error)

	// SignInURL inicia o fluxo OAuth com redirect para a própria origem
	// da aplicação e devolve a URL de autorização.
	SignInURL(redirectTo string) (string, error)

	// SignOut encerra a sessão no provedor.
	SignOut(ctx context.Context) error

	// OnAuthStateChange registra um listener de login/logout externo e
	// devolve a função que desfaz a inscrição.
	OnAuthStateChange(fn func(AuthEvent, *Session)) (unsubscribe func())
}

// OAuthProvider implementa IdentityProvider com golang.org/x/oauth2.
type OAuthProvider struct {
	conf        *oauth2.Config
	userInfoURL string

	mu        sync.Mutex
	session   *Session
	state     string
	listeners map[int]func(AuthEvent, *Session)
	nextID    int
}

// NewOAuthProvider monta o provedor com os endpoints do serviço de
// identidade. userInfoURL é consultada após o exchange para resolver uid e
// email do usuário.
func NewOAuthProvider(clientID, clientSecret, authURL, tokenURL, userInfoURL string) *OAuthProvider {
	return &OAuthProvider{
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     oauth2.Endpoint{AuthURL: authURL, TokenURL: tokenURL},
			Scopes:       []string{"openid", "email", "profile"},
		},
		userInfoURL: userInfoURL,
		listeners:   make(map[int]func(AuthEvent, *Session)),
	}
}

// stateToken gera o state anti-CSRF do fluxo OAuth.
func stateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func (p *OAuthProvider) CurrentSession(ctx context.Context) (*Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.session, nil
}

func (p *OAuthProvider) SignInURL(redirectTo string) (string, error) {
	state, err := stateToken()
	if err != nil {
		return "", fmt.Errorf("erro ao gerar state: %w", err)
	}

	p.mu.Lock()
	p.state = state
	p.conf.RedirectURL = redirectTo
	p.mu.Unlock()

	return p.conf.AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}

// HandleCallback completa o fluxo OAuth: confere o state, troca o code por
// um token, resolve o usuário e emite SIGNED_IN para os listeners.
func (p *OAuthProvider) HandleCallback(ctx context.Context, state, code string) error {
	p.mu.Lock()
	expected := p.state
	p.mu.Unlock()

	if state == "" || state != expected {
		return errors.New("state inválido no callback OAuth")
	}

	tok, err := p.conf.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("erro ao trocar o code por token: %w", err)
	}

	userID, email, err := p.fetchUserInfo(ctx, tok)
	if err != nil {
		return err
	}

	session := &Session{UserID: userID, Email: email, AccessToken: tok.AccessToken}

	p.mu.Lock()
	p.session = session
	p.state = ""
	p.mu.Unlock()

	p.emit(EventSignedIn, session)
	return nil
}

func (p *OAuthProvider) fetchUserInfo(ctx context.Context, tok *oauth2.Token) (userID, email string, err error) {
	resp, err := p.conf.Client(ctx, tok).Get(p.userInfoURL)
	if err != nil {
		return "", "", fmt.Errorf("erro ao consultar userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", "", fmt.Errorf("userinfo respondeu status %d", resp.StatusCode)
	}

	var info struct {
		Sub   string `json:"sub"`
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", "", fmt.Errorf("erro ao decodificar userinfo: %w", err)
	}

	userID = info.Sub
	if userID == "" {
		userID = info.ID
	}
	return userID, info.Email, nil
}

func (p *OAuthProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	p.session = nil
	p.mu.Unlock()

	p.emit(EventSignedOut, nil)
	return nil
}

func (p *OAuthProvider) OnAuthStateChange(fn func(AuthEvent, *Session)) func() {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.listeners, id)
		p.mu.Unlock()
	}
}

func (p *OAuthProvider) emit(event AuthEvent, session *Session) {
	p.mu.Lock()
	fns := make([]func(AuthEvent, *Session), 0, len(p.listeners))
	for _, fn := range p.listeners {
		fns = append(fns, fn)
	}
	p.mu.Unlock()

	for _, fn := range fns {
		fn(event, session)
	}
}
