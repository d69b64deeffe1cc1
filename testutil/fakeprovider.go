package testutil

import (
	"context"
	"sync"

	"todo-list-api/client"
)

// FakeIdentityProvider simula o provedor de identidade visto pelo cliente.
// Emit dispara o evento de login/logout externo para os listeners, como a
// conclusão de um redirect OAuth.
type FakeIdentityProvider struct {
	mu        sync.Mutex
	session   *client.Session
	listeners map[int]func(client.AuthEvent, *client.Session)
	nextID    int

	SessionErr error
	SignInErr  error
	SignOutErr error

	// LastRedirect guarda o redirectTo do último SignInURL.
	LastRedirect string
}

func NewFakeIdentityProvider() *FakeIdentityProvider {
	return &FakeIdentityProvider{
		listeners: make(map[int]func(client.AuthEvent, *client.Session)),
	}
}

// SetSession define a sessão corrente sem emitir evento.
func (f *FakeIdentityProvider) SetSession(s *client.Session) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session = s
}

// Emit simula um evento externo de login/logout.
func (f *FakeIdentityProvider) Emit(event client.AuthEvent, s *client.Session) {
	f.mu.Lock()
	f.session = s
	fns := make([]func(client.AuthEvent, *client.Session), 0, len(f.listeners))
	for _, fn := range f.listeners {
		fns = append(fns, fn)
	}
	f.mu.Unlock()

	for _, fn := range fns {
		fn(event, s)
	}
}

// ListenerCount devolve quantos listeners estão inscritos.
func (f *FakeIdentityProvider) ListenerCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listeners)
}

func (f *FakeIdentityProvider) CurrentSession(ctx context.Context) (*client.Session, error) {
	if f.SessionErr != nil {
		return nil, f.SessionErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session, nil
}

func (f *FakeIdentityProvider) SignInURL(redirectTo string) (string, error) {
	if f.SignInErr != nil {
		return "", f.SignInErr
	}
	f.mu.Lock()
	f.LastRedirect = redirectTo
	f.mu.Unlock()
	return "https://id.example/authorize?redirect_to=" + redirectTo, nil
}

func (f *FakeIdentityProvider) SignOut(ctx context.Context) error {
	if f.SignOutErr != nil {
		return f.SignOutErr
	}
	f.mu.Lock()
	f.session = nil
	f.mu.Unlock()
	return nil
}

func (f *FakeIdentityProvider) OnAuthStateChange(fn func(client.AuthEvent, *client.Session)) func() {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.listeners[id] = fn
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		delete(f.listeners, id)
		f.mu.Unlock()
	}
}

// FakeNavigator registra as navegações pedidas pelas stores.
type FakeNavigator struct {
	mu    sync.Mutex
	route string

	// History acumula todas as rotas navegadas, na ordem.
	History []string
}

func NewFakeNavigator(start string) *FakeNavigator {
	return &FakeNavigator{route: start}
}

func (n *FakeNavigator) CurrentRoute() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.route
}

func (n *FakeNavigator) NavigateTo(route string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.route = route
	n.History = append(n.History, route)
}
