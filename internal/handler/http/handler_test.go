package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/contact-keeper/internal/config"
	"github.com/MKhiriev/contact-keeper/internal/logger"
	"github.com/MKhiriev/contact-keeper/internal/service"
	"github.com/MKhiriev/contact-keeper/models"
)

// ---- Mocks ----

type mockAuthService struct {
	registerFn    func(ctx context.Context, user models.User, password string) (models.User, error)
	loginFn       func(ctx context.Context, email, password string) (models.User, error)
	userByIDFn    func(ctx context.Context, userID int64) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User, password string) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, user, password)
	}
	return user, nil
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return models.User{Email: email}, nil
}

func (m *mockAuthService) UserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.userByIDFn != nil {
		return m.userByIDFn(ctx, userID)
	}
	return models.User{UserID: userID}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed-token", UserID: user.UserID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{UserID: 7}, nil
}

type mockContactService struct {
	createFn func(ctx context.Context, contact models.Contact) (models.Contact, error)
	allFn    func(ctx context.Context) ([]models.Contact, error)
	byUserFn func(ctx context.Context, userID int64) ([]models.Contact, error)
	byIDFn   func(ctx context.Context, contactID string) (models.Contact, error)
	updateFn func(ctx context.Context, update models.ContactUpdate) (models.Contact, error)
	deleteFn func(ctx context.Context, contactID string) (models.Contact, error)
}

func (m *mockContactService) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	if m.createFn != nil {
		return m.createFn(ctx, contact)
	}
	return contact, nil
}

func (m *mockContactService) GetAllContacts(ctx context.Context) ([]models.Contact, error) {
	if m.allFn != nil {
		return m.allFn(ctx)
	}
	return nil, nil
}

func (m *mockContactService) GetContactsByUserID(ctx context.Context, userID int64) ([]models.Contact, error) {
	if m.byUserFn != nil {
		return m.byUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockContactService) GetContactByID(ctx context.Context, contactID string) (models.Contact, error) {
	if m.byIDFn != nil {
		return m.byIDFn(ctx, contactID)
	}
	return models.Contact{ContactID: contactID}, nil
}

func (m *mockContactService) UpdateContact(ctx context.Context, update models.ContactUpdate) (models.Contact, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, update)
	}
	return models.Contact{ContactID: update.ContactID}, nil
}

func (m *mockContactService) DeleteContact(ctx context.Context, contactID string) (models.Contact, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, contactID)
	}
	return models.Contact{ContactID: contactID}, nil
}

// ---- Helpers ----

func newTestHandler(authSvc service.AuthService, contactSvc service.ContactService) *Handler {
	return NewHandler(
		&service.Services{AuthService: authSvc, ContactService: contactSvc},
		config.Server{AllowedOrigins: []string{"*"}},
		logger.Nop(),
	)
}

// serveRequest runs a request through the fully initialised router so that
// middleware, URL params, and route matching behave as in production.
func serveRequest(h *Handler, method, target, body, authHeader string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, body string) map[string]any {
	t.Helper()
	var envelope map[string]any
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		t.Fatalf("response body is not valid JSON: %v\nbody: %s", err, body)
	}
	return envelope
}

// ---- Handler construction ----

func TestNewHandler(t *testing.T) {
	h := newTestHandler(&mockAuthService{}, &mockContactService{})
	if h == nil {
		t.Fatal("expected non-nil handler")
	}
	if h.services == nil {
		t.Error("expected services to be set")
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler(&mockAuthService{}, &mockContactService{})

	rr := serveRequest(h, http.MethodGet, "/health", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if rr.Body.String() != "OK" {
		t.Errorf("expected body OK, got %q", rr.Body.String())
	}
}
