package client

import (
	"context"
	"sync"
)

// AuthStatus é o estado da máquina de autenticação do cliente.
type AuthStatus string

const (
	StatusAnonymous     AuthStatus = "anonymous"
	StatusLoading       AuthStatus = "loading"
	StatusAuthenticated AuthStatus = "authenticated"
	StatusError         AuthStatus = "error"
)

// Rotas conhecidas pelo guard de navegação.
const (
	RouteLogin     = "login"
	RouteDashboard = "dashboard"
)

// Navigator abstrai a navegação do cliente: o equivalente do router do
// frontend.
type Navigator interface {
	CurrentRoute() string
	NavigateTo(route string)
}

// AuthStore espelha a store de autenticação do frontend: sessão corrente,
// flag de loading, último erro e reação a login/logout externos.
type AuthStore struct {
	provider IdentityProvider
	nav      Navigator

	mu      sync.Mutex
	session *Session
	status  AuthStatus
	err     error

	unsubscribe func()
}

// NewAuthStore cria a store e registra a inscrição no provedor exatamente
// uma vez, na construção. Close desfaz a inscrição.
func NewAuthStore(provider IdentityProvider, nav Navigator) *AuthStore {
	s := &AuthStore{
		provider: provider,
		nav:      nav,
		status:   StatusAnonymous,
	}
	s.unsubscribe = provider.OnAuthStateChange(s.handleAuthChange)
	return s
}

// handleAuthChange reaplica a transição de sessão quando o provedor emite
// login/logout externo (ex.: conclusão do redirect OAuth) e aciona a
// navegação correspondente.
func (s *AuthStore) handleAuthChange(event AuthEvent, session *Session) {
	s.mu.Lock()
	s.session = session
	if session != nil {
		s.status = StatusAuthenticated
	} else {
		s.status = StatusAnonymous
	}
	nav := s.nav
	s.mu.Unlock()

	if nav == nil {
		return
	}
	switch event {
	case EventSignedIn:
		nav.NavigateTo(RouteDashboard)
	case EventSignedOut:
		nav.NavigateTo(RouteLogin)
	}
}

// Init busca a sessão corrente no provedor. Já logado na tela de login,
// navega para o dashboard.
func (s *AuthStore) Init(ctx context.Context) {
	s.mu.Lock()
	s.status = StatusLoading
	s.err = nil
	s.mu.Unlock()

	session, err := s.provider.CurrentSession(ctx)

	s.mu.Lock()
	if err != nil {
		s.session = nil
		s.status = StatusError
		s.err = err
		s.mu.Unlock()
		return
	}
	s.session = session
	if session != nil {
		s.status = StatusAuthenticated
	} else {
		s.status = StatusAnonymous
	}
	nav := s.nav
	s.mu.Unlock()

	if session != nil && nav != nil && nav.CurrentRoute() == RouteLogin {
		nav.NavigateTo(RouteDashboard)
	}
}

// SignIn delega ao fluxo OAuth do provedor, com redirect de volta para a
// própria origem. Não produz sessão por si só: a sessão chega depois, pelo
// listener, quando o callback completa.
func (s *AuthStore) SignIn(redirectTo string) (string, error) {
	s.mu.Lock()
	s.status = StatusLoading
	s.err = nil
	s.mu.Unlock()

	url, err := s.provider.SignInURL(redirectTo)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusError
		s.err = err
		return "", err
	}
	if s.session != nil {
		s.status = StatusAuthenticated
	} else {
		s.status = StatusAnonymous
	}
	return url, nil
}

// SignOut encerra a sessão no provedor e limpa o estado local.
func (s *AuthStore) SignOut(ctx context.Context) error {
	s.mu.Lock()
	s.status = StatusLoading
	s.err = nil
	s.mu.Unlock()

	err := s.provider.SignOut(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusError
		s.err = err
		return err
	}
	s.session = nil
	s.status = StatusAnonymous
	return nil
}

// Close desfaz a inscrição registrada na construção.
func (s *AuthStore) Close() {
	s.mu.Lock()
	unsub := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}

// Session implementa SessionProvider para o APIClient.
func (s *AuthStore) Session() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Status devolve o estado corrente da máquina de autenticação.
func (s *AuthStore) Status() AuthStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Err devolve o último erro registrado.
func (s *AuthStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// IsAuthenticated informa se há sessão corrente; é o critério do guard de
// navegação.
func (s *AuthStore) IsAuthenticated() bool {
	return s.Session() != nil
}
