package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/contact-keeper/internal/service"
	"github.com/MKhiriev/contact-keeper/internal/store"
	"github.com/MKhiriev/contact-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Success(t *testing.T) {
	authSvc := &mockAuthService{
		registerFn: func(_ context.Context, user models.User, password string) (models.User, error) {
			assert.Equal(t, "B", user.Name)
			assert.Equal(t, "b@x.com", user.Email)
			assert.Equal(t, "secret", password)
			user.UserID = 42
			return user, nil
		},
	}
	h := newTestHandler(authSvc, &mockContactService{})

	rr := serveRequest(h, http.MethodPost, "/api/user/register",
		`{"name":"B","email":"b@x.com","password":"secret"}`, "")

	require.Equal(t, http.StatusCreated, rr.Code)
	envelope := decodeEnvelope(t, rr.Body.String())
	assert.Equal(t, "User registered successfully", envelope["message"])
	assert.Equal(t, true, envelope["success"])

	user, ok := envelope["user"].(map[string]any)
	require.True(t, ok, "response must carry the user payload")
	assert.Equal(t, float64(42), user["user_id"])
	assert.NotContains(t, rr.Body.String(), "password", "password hash must never be serialised")
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(&mockAuthService{}, &mockContactService{})

	rr := serveRequest(h, http.MethodPost, "/api/user/register", `{broken`, "")

	require.Equal(t, http.StatusBadRequest, rr.Code)
	envelope := decodeEnvelope(t, rr.Body.String())
	assert.Equal(t, false, envelope["success"])
}

func TestRegister_MissingFields(t *testing.T) {
	authSvc := &mockAuthService{
		registerFn: func(_ context.Context, _ models.User, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}
	h := newTestHandler(authSvc, &mockContactService{})

	rr := serveRequest(h, http.MethodPost, "/api/user/register", `{"email":"b@x.com"}`, "")

	require.Equal(t, http.StatusBadRequest, rr.Code)
	envelope := decodeEnvelope(t, rr.Body.String())
	assert.Equal(t, "All fields are required", envelope["message"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	authSvc := &mockAuthService{
		registerFn: func(_ context.Context, _ models.User, _ string) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	h := newTestHandler(authSvc, &mockContactService{})

	rr := serveRequest(h, http.MethodPost, "/api/user/register",
		`{"name":"B","email":"b@x.com","password":"secret"}`, "")

	require.Equal(t, http.StatusConflict, rr.Code)
	envelope := decodeEnvelope(t, rr.Body.String())
	assert.Equal(t, "User already exists", envelope["message"])
}

func TestRegister_InternalError(t *testing.T) {
	authSvc := &mockAuthService{
		registerFn: func(_ context.Context, _ models.User, _ string) (models.User, error) {
			return models.User{}, store.ErrExecutingQuery
		},
	}
	h := newTestHandler(authSvc, &mockContactService{})

	rr := serveRequest(h, http.MethodPost, "/api/user/register",
		`{"name":"B","email":"b@x.com","password":"secret"}`, "")

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	envelope := decodeEnvelope(t, rr.Body.String())
	assert.Equal(t, "Internal server error", envelope["message"], "internal error text must not leak")
}

func TestLogin_Success(t *testing.T) {
	authSvc := &mockAuthService{
		loginFn: func(_ context.Context, email, password string) (models.User, error) {
			assert.Equal(t, "b@x.com", email)
			assert.Equal(t, "secret", password)
			return models.User{UserID: 42, Name: "B", Email: email}, nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			return models.Token{SignedString: "signed.jwt.token", UserID: user.UserID}, nil
		},
	}
	h := newTestHandler(authSvc, &mockContactService{})

	rr := serveRequest(h, http.MethodPost, "/api/user/login",
		`{"email":"b@x.com","password":"secret"}`, "")

	require.Equal(t, http.StatusOK, rr.Code)
	envelope := decodeEnvelope(t, rr.Body.String())
	assert.Equal(t, "Welcome B", envelope["message"])
	assert.Equal(t, true, envelope["success"])
	assert.Equal(t, "signed.jwt.token", envelope["token"])

	user, ok := envelope["user"].(map[string]any)
	require.True(t, ok, "response must carry the user payload")
	assert.Equal(t, "b@x.com", user["email"])
}

func TestLogin_UnknownEmail(t *testing.T) {
	authSvc := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	h := newTestHandler(authSvc, &mockContactService{})

	rr := serveRequest(h, http.MethodPost, "/api/user/login",
		`{"email":"ghost@x.com","password":"secret"}`, "")

	require.Equal(t, http.StatusNotFound, rr.Code)
	envelope := decodeEnvelope(t, rr.Body.String())
	assert.Equal(t, "User does not exist", envelope["message"])
}

func TestLogin_WrongPassword(t *testing.T) {
	authSvc := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrWrongPassword
		},
	}
	h := newTestHandler(authSvc, &mockContactService{})

	rr := serveRequest(h, http.MethodPost, "/api/user/login",
		`{"email":"b@x.com","password":"wrong"}`, "")

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	envelope := decodeEnvelope(t, rr.Body.String())
	assert.Equal(t, "Invalid email or password", envelope["message"])
}

func TestLogin_MissingFields(t *testing.T) {
	authSvc := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}
	h := newTestHandler(authSvc, &mockContactService{})

	rr := serveRequest(h, http.MethodPost, "/api/user/login", `{"email":"b@x.com"}`, "")

	require.Equal(t, http.StatusBadRequest, rr.Code)
	envelope := decodeEnvelope(t, rr.Body.String())
	assert.Equal(t, "All fields are required", envelope["message"])
}

func TestLogin_TokenCreationFailure(t *testing.T) {
	authSvc := &mockAuthService{
		loginFn: func(_ context.Context, email, _ string) (models.User, error) {
			return models.User{UserID: 42, Email: email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}
	h := newTestHandler(authSvc, &mockContactService{})

	rr := serveRequest(h, http.MethodPost, "/api/user/login",
		`{"email":"b@x.com","password":"secret"}`, "")

	require.Equal(t, http.StatusInternalServerError, rr.Code)
}
