//go:build unit

package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"beautyverse-storefront/internal/domain/identity"
	"beautyverse-storefront/internal/infra/apiclient"
	"beautyverse-storefront/internal/pkg/errs"
	"beautyverse-storefront/internal/pkg/kv"
	"beautyverse-storefront/internal/usecase"
	"beautyverse-storefront/tests/common/authtest"
	usecasemock "beautyverse-storefront/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionStoreTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *SessionStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func TestSessionStoreSuite(t *testing.T) {
	suite.Run(t, new(SessionStoreTestSuite))
}

// loginBackend answers the login endpoint with payload and counts calls.
func (s *SessionStoreTestSuite) loginBackend(status int, payload any) (*usecase.SessionStore, *kv.Memory, *atomic.Int32) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/login-user/", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		s.NotEmpty(body["username"])
		writeJSON(w, status, payload)
	})
	client, store := fakeBackend(s.T(), mux)
	session := usecase.NewSessionStore(store, client, discardLogger())
	s.Require().NoError(session.Restore(s.ctx))
	return session, store, &calls
}

func (s *SessionStoreTestSuite) TestLogin() {
	s.Run("success: persists tokens and server privilege", func() {
		token := authtest.CustomerToken(s.T(), "aline")
		session, store, _ := s.loginBackend(http.StatusOK, map[string]any{
			"access":  token,
			"refresh": "refresh-1",
			"user":    map[string]any{"username": "aline", "is_staff": true},
		})

		res := session.Login(s.ctx, "aline", "secret")
		s.True(res.Success, res.Message)

		id, ok := session.Current()
		s.True(ok)
		s.Equal(identity.Identity{Username: "aline", IsAdmin: true}, id)

		for key, want := range map[string]string{
			identity.AccessTokenKey:  token,
			identity.RefreshTokenKey: "refresh-1",
			identity.UsernameKey:     "aline",
			identity.IsAdminKey:      "true",
		} {
			got, found, err := store.Get(s.ctx, key)
			s.Require().NoError(err)
			s.True(found, key)
			s.Equal(want, got, key)
		}
	})

	s.Run("success: username admin without flags is not privileged", func() {
		session, _, _ := s.loginBackend(http.StatusOK, map[string]any{
			"access":  authtest.CustomerToken(s.T(), "admin"),
			"refresh": "r",
		})

		s.True(session.Login(s.ctx, "admin", "secret").Success)
		id, _ := session.Current()
		s.False(id.IsAdmin)
	})

	s.Run("success: privilege falls back to token claims", func() {
		session, _, _ := s.loginBackend(http.StatusOK, map[string]any{
			"access":  authtest.StaffToken(s.T(), "owner"),
			"refresh": "r",
		})

		s.True(session.Login(s.ctx, "owner", "secret").Success)
		id, _ := session.Current()
		s.True(id.IsAdmin)
	})

	s.Run("error: empty fields fail without a network call", func() {
		session, _, calls := s.loginBackend(http.StatusOK, map[string]any{})

		for _, creds := range [][2]string{{"", "x"}, {"aline", ""}, {"  ", "x"}} {
			res := session.Login(s.ctx, creds[0], creds[1])
			s.False(res.Success)
			s.Equal("Username and password are required", res.Message)
			s.True(errs.Is(res.Err, errs.ErrValidation), res.Err)
		}
		s.Zero(calls.Load())
	})

	s.Run("error: response without access token", func() {
		session, store, _ := s.loginBackend(http.StatusOK, map[string]any{"refresh": "r"})

		res := session.Login(s.ctx, "aline", "secret")
		s.False(res.Success)
		s.Equal("Invalid login response", res.Message)
		s.True(errs.Is(res.Err, apiclient.ErrUnexpectedPayload), res.Err)
		s.False(session.IsAuthenticated())
		s.Zero(store.Len())
	})

	s.Run("error: backend detail becomes the message", func() {
		session, _, _ := s.loginBackend(http.StatusBadRequest, map[string]any{
			"detail": "No active account found with the given credentials",
		})

		res := session.Login(s.ctx, "aline", "wrong")
		s.False(res.Success)
		s.Equal("No active account found with the given credentials", res.Message)
	})
}

func (s *SessionStoreTestSuite) TestRegister() {
	valid := usecase.RegisterInput{Username: "aline", Email: "aline@example.com", Password: "secret123", FirstName: "Aline"}

	s.Run("success: posts the account and does not log in", func() {
		var got map[string]any
		mux := http.NewServeMux()
		mux.HandleFunc("POST /users/create-account/", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&got)
			writeJSON(w, http.StatusCreated, map[string]any{"id": 5})
		})
		client, store := fakeBackend(s.T(), mux)
		session := usecase.NewSessionStore(store, client, discardLogger())

		in := valid
		in.ConfirmPassword = in.Password
		res := session.Register(s.ctx, in)
		s.True(res.Success, res.Message)
		s.False(session.IsAuthenticated())
		s.Equal("Aline", got["first_name"])
		s.NotContains(got, "ConfirmPassword")
	})

	s.Run("error: client side validation", func() {
		ctrl := gomock.NewController(s.T())
		backend := usecasemock.NewMockBackend(ctrl)
		backend.EXPECT().OnAuthFailure(gomock.Any()).Times(1)
		session := usecase.NewSessionStore(kv.NewMemory(), backend, discardLogger())

		cases := []struct {
			name   string
			mutate func(*usecase.RegisterInput)
			want   string
		}{
			{name: "missing username", mutate: func(in *usecase.RegisterInput) { in.Username = "" }, want: "All fields are required for registration"},
			{name: "missing email", mutate: func(in *usecase.RegisterInput) { in.Email = " " }, want: "All fields are required for registration"},
			{name: "missing password", mutate: func(in *usecase.RegisterInput) { in.Password = "" }, want: "All fields are required for registration"},
			{name: "missing first name", mutate: func(in *usecase.RegisterInput) { in.FirstName = "" }, want: "All fields are required for registration"},
			{name: "password mismatch", mutate: func(in *usecase.RegisterInput) { in.ConfirmPassword = "other" }, want: "Passwords do not match"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				in := valid
				tc.mutate(&in)
				res := session.Register(s.ctx, in)
				s.False(res.Success)
				s.Equal(tc.want, res.Message)
				s.True(errs.Is(res.Err, errs.ErrValidation), res.Err)
			})
		}
	})

	s.Run("error: field errors from the backend", func() {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /users/create-account/", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"username": ["A user with that username already exists."], "email": ["taken"]}`))
		})
		client, store := fakeBackend(s.T(), mux)
		session := usecase.NewSessionStore(store, client, discardLogger())

		res := session.Register(s.ctx, valid)
		s.False(res.Success)
		s.Equal("username: A user with that username already exists.", res.Message)
	})
}

func (s *SessionStoreTestSuite) TestLogoutAndAuthFailure() {
	s.Run("logout clears identity and every persisted key", func() {
		session, store, _ := s.loginBackend(http.StatusOK, map[string]any{
			"access": authtest.CustomerToken(s.T(), "aline"), "refresh": "r",
		})
		s.Require().True(session.Login(s.ctx, "aline", "secret").Success)

		s.Require().NoError(session.Logout(s.ctx))
		s.False(session.IsAuthenticated())
		for _, key := range identity.Keys {
			_, found, err := store.Get(s.ctx, key)
			s.Require().NoError(err)
			s.False(found, key)
		}
		s.NoError(session.Logout(s.ctx))
	})

	s.Run("a 401 from any call logs the session out", func() {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /users/login-user/", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"access": "tok", "refresh": "r"})
		})
		mux.HandleFunc("GET /bookings/my-bookings/", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "Given token not valid for any token type"})
		})
		client, store := fakeBackend(s.T(), mux)
		session := usecase.NewSessionStore(store, client, discardLogger())
		s.Require().True(session.Login(s.ctx, "aline", "secret").Success)

		err := client.Get(s.ctx, "/bookings/my-bookings/", nil)
		s.Require().Error(err)
		s.False(session.IsAuthenticated())
		_, found, _ := store.Get(s.ctx, identity.AccessTokenKey)
		s.False(found)
		_, found, _ = store.Get(s.ctx, identity.UsernameKey)
		s.False(found)
	})
}

func TestSessionRestore(t *testing.T) {
	ctx := context.Background()

	newSession := func(t *testing.T, store kv.Storage) *usecase.SessionStore {
		ctrl := gomock.NewController(t)
		backend := usecasemock.NewMockBackend(ctrl)
		var handler apiclient.AuthFailureHandler
		backend.EXPECT().OnAuthFailure(gomock.Any()).Do(func(fn apiclient.AuthFailureHandler) { handler = fn }).Times(1)
		s := usecase.NewSessionStore(store, backend, discardLogger())
		require.NotNil(t, handler)
		return s
	}

	t.Run("loading until restored", func(t *testing.T) {
		session := newSession(t, kv.NewMemory())
		assert.True(t, session.Loading())
		require.NoError(t, session.Restore(ctx))
		assert.False(t, session.Loading())
		assert.False(t, session.IsAuthenticated())
	})

	t.Run("identity present iff token present", func(t *testing.T) {
		store := kv.NewMemory()
		require.NoError(t, store.Set(ctx, identity.UsernameKey, "aline"))
		session := newSession(t, store)
		require.NoError(t, session.Restore(ctx))
		assert.False(t, session.IsAuthenticated())

		require.NoError(t, store.Set(ctx, identity.AccessTokenKey, "opaque"))
		require.NoError(t, store.Set(ctx, identity.IsAdminKey, "true"))
		require.NoError(t, session.Restore(ctx))
		id, ok := session.Current()
		assert.True(t, ok)
		assert.Equal(t, identity.Identity{Username: "aline", IsAdmin: true}, id)
	})

	t.Run("missing flag falls back to token claims", func(t *testing.T) {
		store := kv.NewMemory()
		require.NoError(t, store.Set(ctx, identity.AccessTokenKey, authtest.StaffToken(t, "owner")))
		session := newSession(t, store)
		require.NoError(t, session.Restore(ctx))

		id, ok := session.Current()
		assert.True(t, ok)
		assert.Equal(t, "owner", id.Username)
		assert.True(t, id.IsAdmin)
	})
}
