package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"todo-list-api/client"
)

// newIdentityServer simula o serviço de identidade: endpoint de token e de
// userinfo do fluxo OAuth.
func newIdentityServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"access_token": "token-abc",
			"token_type":   "bearer",
		})
	})
	mux.HandleFunc("/oauth/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Authorization"), "token-abc") {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"sub":   "uid-oauth",
			"email": "user@example.com",
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newOAuthProvider(server *httptest.Server) *client.OAuthProvider {
	return client.NewOAuthProvider(
		"client-id",
		"client-secret",
		server.URL+"/oauth/authorize",
		server.URL+"/oauth/token",
		server.URL+"/oauth/userinfo",
	)
}

func TestOAuthSignInURLCarriesStateAndRedirect(t *testing.T) {
	provider := newOAuthProvider(newIdentityServer(t))

	raw, err := provider.SignInURL("http://localhost:5173")
	if err != nil {
		t.Fatalf("sign-in url: %v", err)
	}

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("URL inválida: %v", err)
	}
	q := u.Query()
	if q.Get("state") == "" {
		t.Error("a URL de autorização precisa do state anti-CSRF")
	}
	if q.Get("redirect_uri") != "http://localhost:5173" {
		t.Errorf("redirect_uri: %q", q.Get("redirect_uri"))
	}
	if q.Get("client_id") != "client-id" {
		t.Errorf("client_id: %q", q.Get("client_id"))
	}
}

func TestOAuthCallbackMaterializesSession(t *testing.T) {
	provider := newOAuthProvider(newIdentityServer(t))

	var gotEvent client.AuthEvent
	var gotSession *client.Session
	unsubscribe := provider.OnAuthStateChange(func(e client.AuthEvent, s *client.Session) {
		gotEvent = e
		gotSession = s
	})
	defer unsubscribe()

	raw, err := provider.SignInURL("http://localhost:5173")
	if err != nil {
		t.Fatalf("sign-in url: %v", err)
	}
	state := mustQuery(t, raw, "state")

	if err := provider.HandleCallback(context.Background(), state, "code-123"); err != nil {
		t.Fatalf("callback: %v", err)
	}

	session, err := provider.CurrentSession(context.Background())
	if err != nil || session == nil {
		t.Fatalf("sessão deveria existir após o callback: %v", err)
	}
	if session.UserID != "uid-oauth" || session.Email != "user@example.com" || session.AccessToken != "token-abc" {
		t.Errorf("sessão inesperada: %+v", session)
	}
	if gotEvent != client.EventSignedIn || gotSession != session {
		t.Errorf("SIGNED_IN deveria ter sido emitido com a sessão: %s %+v", gotEvent, gotSession)
	}
}

func TestOAuthCallbackRejectsWrongState(t *testing.T) {
	provider := newOAuthProvider(newIdentityServer(t))

	if _, err := provider.SignInURL("http://localhost:5173"); err != nil {
		t.Fatalf("sign-in url: %v", err)
	}

	if err := provider.HandleCallback(context.Background(), "state-forjado", "code-123"); err == nil {
		t.Fatal("state errado deveria ser rejeitado")
	}
	if session, _ := provider.CurrentSession(context.Background()); session != nil {
		t.Errorf("nenhuma sessão poderia ter sido criada: %+v", session)
	}
}

func TestOAuthSignOutEmitsEvent(t *testing.T) {
	provider := newOAuthProvider(newIdentityServer(t))

	var gotEvent client.AuthEvent
	unsubscribe := provider.OnAuthStateChange(func(e client.AuthEvent, s *client.Session) {
		gotEvent = e
	})
	defer unsubscribe()

	if err := provider.SignOut(context.Background()); err != nil {
		t.Fatalf("sign-out: %v", err)
	}
	if gotEvent != client.EventSignedOut {
		t.Errorf("esperava SIGNED_OUT, veio %q", gotEvent)
	}
	if session, _ := provider.CurrentSession(context.Background()); session != nil {
		t.Errorf("sessão deveria ter sido limpa: %+v", session)
	}
}

func mustQuery(t *testing.T, raw, key string) string {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("URL inválida: %v", err)
	}
	v := u.Query().Get(key)
	if v == "" {
		t.Fatalf("parâmetro %s ausente em %s", key, raw)
	}
	return v
}
