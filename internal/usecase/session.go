package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"beautyverse-storefront/internal/domain/identity"
	"beautyverse-storefront/internal/infra/apiclient"
	"beautyverse-storefront/internal/pkg/errs"
	"beautyverse-storefront/internal/pkg/jwt"
	"beautyverse-storefront/internal/pkg/kv"
)

const (
	msgCredentialsRequired = "Username and password are required"
	msgInvalidLogin        = "Invalid login response"
	msgRegisterRequired    = "All fields are required for registration"
	msgPasswordMismatch    = "Passwords do not match"
	msgUnreachable         = "Unable to reach the server. Please try again."
	msgGeneric             = "Something went wrong"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Access  string                `json:"access"`
	Refresh string                `json:"refresh"`
	User    *identity.UserPayload `json:"user"`
}

type SessionStore struct {
	storage kv.Storage
	backend Backend
	logger  *slog.Logger

	mu       sync.RWMutex
	loading  bool
	identity *identity.Identity
}

// NewSessionStore subscribes to the backend's auth failures; call Restore before use.
func NewSessionStore(storage kv.Storage, backend Backend, logger *slog.Logger) *SessionStore {
	s := &SessionStore{
		storage: storage,
		backend: backend,
		logger:  logger,
		loading: true,
	}
	backend.OnAuthFailure(func(ctx context.Context) {
		if err := s.Logout(ctx); err != nil {
			s.logger.Error("failed to clear session after auth failure", "error", err.Error())
		}
	})
	return s
}

// Restore rebuilds the identity from storage without asking the backend.
// Loading is false afterwards even when storage fails.
func (s *SessionStore) Restore(ctx context.Context) error {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	token, ok, err := s.storage.Get(ctx, identity.AccessTokenKey)
	if err != nil {
		return errs.Wrap(err, "restore session")
	}
	if !ok || token == "" {
		s.setIdentity(nil)
		return nil
	}

	username, _, err := s.storage.Get(ctx, identity.UsernameKey)
	if err != nil {
		return errs.Wrap(err, "restore session")
	}
	flag, hasFlag, err := s.storage.Get(ctx, identity.IsAdminKey)
	if err != nil {
		return errs.Wrap(err, "restore session")
	}

	id := identity.Identity{Username: username, IsAdmin: identity.ParseFlag(flag)}
	if claims, err := jwt.ParseUnverified(token); err == nil {
		if id.Username == "" {
			id.Username = claims.Username
		}
		if !hasFlag {
			id.IsAdmin = claims.Privileged()
		}
	}
	s.setIdentity(&id)
	return nil
}

func (s *SessionStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *SessionStore) Current() (identity.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return identity.Identity{}, false
	}
	return *s.identity, true
}

func (s *SessionStore) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

func (s *SessionStore) Login(ctx context.Context, username, password string) AuthResult {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return AuthResult{Message: msgCredentialsRequired, Err: errs.Validation(msgCredentialsRequired)}
	}

	var resp loginResponse
	if err := s.backend.Post(ctx, pathLogin, loginRequest{Username: username, Password: password}, &resp); err != nil {
		s.logger.Info("login failed", "username", username, "error", err.Error())
		return AuthResult{Message: failureMessage(err), Err: err}
	}
	if resp.Access == "" {
		return AuthResult{Message: msgInvalidLogin, Err: errs.Mark(errs.New(msgInvalidLogin), apiclient.ErrUnexpectedPayload)}
	}

	var claims identity.ClaimSource
	if c, err := jwt.ParseUnverified(resp.Access); err == nil {
		claims = c
	}
	id := identity.Identity{
		Username: identity.ResolveUsername(username, resp.User),
		IsAdmin:  identity.ResolvePrivilege(resp.User, claims),
	}

	entries := []struct{ key, value string }{
		{identity.AccessTokenKey, resp.Access},
		{identity.RefreshTokenKey, resp.Refresh},
		{identity.UsernameKey, id.Username},
		{identity.IsAdminKey, identity.FormatFlag(id.IsAdmin)},
	}
	for _, e := range entries {
		if err := s.storage.Set(ctx, e.key, e.value); err != nil {
			s.logger.Error("failed to persist session", "key", e.key, "error", err.Error())
			return AuthResult{Message: msgGeneric, Err: err}
		}
	}

	s.setIdentity(&id)
	s.logger.Info("logged in", "username", id.Username, "is_admin", id.IsAdmin)
	return AuthResult{Success: true}
}

func (s *SessionStore) Register(ctx context.Context, in RegisterInput) AuthResult {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	in.FirstName = strings.TrimSpace(in.FirstName)
	if in.Username == "" || in.Email == "" || in.Password == "" || in.FirstName == "" {
		return AuthResult{Message: msgRegisterRequired, Err: errs.Validation(msgRegisterRequired)}
	}
	if in.ConfirmPassword != "" && in.ConfirmPassword != in.Password {
		return AuthResult{Message: msgPasswordMismatch, Err: errs.Validation(msgPasswordMismatch)}
	}

	if err := s.backend.Post(ctx, pathRegister, in, nil); err != nil {
		s.logger.Info("registration failed", "username", in.Username, "error", err.Error())
		return AuthResult{Message: failureMessage(err), Err: err}
	}
	return AuthResult{Success: true}
}

// Logout clears every auth key and the in-memory identity. It is idempotent.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.setIdentity(nil)
	if err := kv.RemoveAll(ctx, s.storage, identity.Keys...); err != nil {
		return errs.Wrap(err, "clear session")
	}
	return nil
}

func (s *SessionStore) setIdentity(id *identity.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = id
}

// failureMessage turns a backend error into form text.
func failureMessage(err error) string {
	var apiErr *apiclient.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errs.Is(err, apiclient.ErrTransport):
		return msgUnreachable
	default:
		return msgGeneric
	}
}
