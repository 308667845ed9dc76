package rest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"freshtrack-backend/application/services"
	"freshtrack-backend/domain/inventory"
	"freshtrack-backend/domain/user"
	"freshtrack-backend/pkg/auth"
	apperrors "freshtrack-backend/pkg/errors"
	"freshtrack-backend/tests/mocks"
)

type testEnv struct {
	handler  http.Handler
	tokens   *auth.TokenService
	profiles *mocks.MockProfileRepository
	items    *mocks.MockItemRepository
	notifier *mocks.MockNotificationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	profiles := new(mocks.MockProfileRepository)
	items := new(mocks.MockItemRepository)
	notifier := new(mocks.MockNotificationService)

	logger := zap.NewNop()
	tokens := auth.NewTokenService("test-secret", "freshtrack", time.Hour)
	authSvc := services.NewAuthService(profiles, notifier, tokens, logger)
	invSvc := services.NewInventoryService(items, inventory.NewItemValidator(), logger)

	router := NewRouter(authSvc, invSvc, tokens, true, logger)
	return &testEnv{
		handler:  router.Setup(),
		tokens:   tokens,
		profiles: profiles,
		items:    items,
		notifier: notifier,
	}
}

func (e *testEnv) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := e.tokens.Issue(email)
	require.NoError(t, err)
	return token
}

func TestRouter_Health(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestRouter_Register(t *testing.T) {
	env := newTestEnv(t)
	env.profiles.On("CreateIfAbsent", mock.Anything, mock.AnythingOfType("user.Profile")).Return(nil)
	env.notifier.On("SubscribeEmail", mock.Anything, "a@b.com").Return(nil)

	rec := env.do(t, http.MethodPost, "/register", `{"email":"a@b.com","password":"Str0ngpass"}`, "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "User registered successfully")
}

func TestRouter_Register_Conflict(t *testing.T) {
	env := newTestEnv(t)
	env.profiles.On("CreateIfAbsent", mock.Anything, mock.AnythingOfType("user.Profile")).
		Return(apperrors.NewConflictError("profile already exists"))

	rec := env.do(t, http.MethodPost, "/register", `{"email":"a@b.com","password":"Str0ngpass"}`, "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"User already exists"}`, rec.Body.String())
}

func TestRouter_Login(t *testing.T) {
	env := newTestEnv(t)
	hash, err := auth.HashPassword("Str0ngpass")
	require.NoError(t, err)
	env.profiles.On("GetByEmail", mock.Anything, "a@b.com").
		Return(&user.Profile{Email: "a@b.com", PasswordHash: hash}, nil)

	rec := env.do(t, http.MethodPost, "/login", `{"email":"a@b.com","password":"Str0ngpass"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token"`)
}

func TestRouter_Login_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/login", `{"email":"a@b.com"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Email and password are required"}`, rec.Body.String())
}

func TestRouter_Login_UnknownUser(t *testing.T) {
	env := newTestEnv(t)
	env.profiles.On("GetByEmail", mock.Anything, "ghost@b.com").
		Return(nil, apperrors.NewNotFoundError("profile"))

	rec := env.do(t, http.MethodPost, "/login", `{"email":"ghost@b.com","password":"Str0ngpass"}`, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"User not found"}`, rec.Body.String())
}

func TestRouter_Items_RequireAuth(t *testing.T) {
	env := newTestEnv(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/items"},
		{http.MethodGet, "/items"},
		{http.MethodPut, "/items/some-id"},
		{http.MethodDelete, "/items/some-id"},
		{http.MethodGet, "/analytics"},
	} {
		rec := env.do(t, route.method, route.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", route.method, route.path)
	}
}

func TestRouter_AddItem(t *testing.T) {
	env := newTestEnv(t)
	env.items.On("Put", mock.Anything, "a@b.com", mock.AnythingOfType("inventory.Item")).Return(nil)

	expiry := time.Now().UTC().AddDate(0, 0, 10).Format("2006-01-02")
	purchase := time.Now().UTC().Format("2006-01-02")
	body := `{"itemName":"Milk","quantity":2,"purchaseDate":"` + purchase + `","expiryDate":"` + expiry + `"}`

	rec := env.do(t, http.MethodPost, "/items", body, env.tokenFor(t, "a@b.com"))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Item added successfully")
	assert.Contains(t, rec.Body.String(), `"itemName":"Milk"`)
	env.items.AssertExpectations(t)
}

func TestRouter_AddItem_ValidationErrors(t *testing.T) {
	env := newTestEnv(t)

	body := `{"itemName":"A","quantity":0,"purchaseDate":"2024-05-01","expiryDate":"2024-04-01"}`
	rec := env.do(t, http.MethodPost, "/items", body, env.tokenFor(t, "a@b.com"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{
		"message": "Validation failed",
		"errors": [
			"Item name must be at least 2 characters long",
			"Quantity must be a positive number",
			"Expiry date must be after purchase date"
		]
	}`, rec.Body.String())
	env.items.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_ListItems_EmptyIsArray(t *testing.T) {
	env := newTestEnv(t)
	env.items.On("ListByOwner", mock.Anything, "a@b.com").Return([]inventory.Item{}, nil)

	rec := env.do(t, http.MethodGet, "/items", "", env.tokenFor(t, "a@b.com"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRouter_UpdateItem_NotFound(t *testing.T) {
	env := newTestEnv(t)
	env.items.On("Get", mock.Anything, "a@b.com", "missing").
		Return(nil, apperrors.NewNotFoundError("item"))

	expiry := time.Now().UTC().AddDate(0, 0, 10).Format("2006-01-02")
	purchase := time.Now().UTC().Format("2006-01-02")
	body := `{"itemName":"Milk","quantity":2,"purchaseDate":"` + purchase + `","expiryDate":"` + expiry + `"}`

	rec := env.do(t, http.MethodPut, "/items/missing", body, env.tokenFor(t, "a@b.com"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Item not found"}`, rec.Body.String())
}

func TestRouter_DeleteItem(t *testing.T) {
	env := newTestEnv(t)
	env.items.On("Delete", mock.Anything, "a@b.com", "item-1").Return(nil)

	rec := env.do(t, http.MethodDelete, "/items/item-1", "", env.tokenFor(t, "a@b.com"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Item deleted successfully"}`, rec.Body.String())
}

func TestRouter_Analytics(t *testing.T) {
	env := newTestEnv(t)
	stored := []inventory.Item{
		{ID: "1", Quantity: 2, ExpiryDate: time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")},
		{ID: "2", Quantity: 2, ExpiryDate: time.Now().UTC().AddDate(0, 0, 30).Format("2006-01-02")},
	}
	env.items.On("ListByOwner", mock.Anything, "a@b.com").Return(stored, nil)

	rec := env.do(t, http.MethodGet, "/analytics", "", env.tokenFor(t, "a@b.com"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalItems":2`)
	assert.Contains(t, rec.Body.String(), `"expiredItems":1`)
	assert.Contains(t, rec.Body.String(), `"wastePercentage":50`)
}

func TestRouter_Unavailable(t *testing.T) {
	env := newTestEnv(t)
	env.items.On("ListByOwner", mock.Anything, "a@b.com").
		Return(nil, apperrors.NewUnavailableError("dynamodb"))

	rec := env.do(t, http.MethodGet, "/items", "", env.tokenFor(t, "a@b.com"))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
