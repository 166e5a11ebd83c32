package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nomzbank/auth-api/internal/application/verification"
	"github.com/nomzbank/auth-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mock ---

type mockVerificationSvc struct{ mock.Mock }

func (m *mockVerificationSvc) RequestCode(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *mockVerificationSvc) VerifyAndRegister(ctx context.Context, req verification.RegisterRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockVerificationSvc) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// --- helpers ---

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h(w, r)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// --- SendCode tests ---

func TestSendCode_HappyPath(t *testing.T) {
	svc := &mockVerificationSvc{}
	svc.On("RequestCode", mock.Anything, "alice@example.com").Return(nil)

	h := NewVerificationHandler(svc)
	w := postJSON(t, h.SendCode, `{"email":"alice@example.com"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{"success": true}, decodeBody(t, w))
	svc.AssertExpectations(t)
}

func TestSendCode_MalformedBody(t *testing.T) {
	svc := &mockVerificationSvc{}
	h := NewVerificationHandler(svc)
	w := postJSON(t, h.SendCode, `{not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "RequestCode", mock.Anything, mock.Anything)
}

func TestSendCode_MissingEmail(t *testing.T) {
	svc := &mockVerificationSvc{}
	h := NewVerificationHandler(svc)
	w := postJSON(t, h.SendCode, `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "RequestCode", mock.Anything, mock.Anything)
}

func TestSendCode_InvalidEmailMapsTo400(t *testing.T) {
	svc := &mockVerificationSvc{}
	svc.On("RequestCode", mock.Anything, "foo").
		Return(fmt.Errorf("invalid email address: %w", domain.ErrInvalidEmail))

	h := NewVerificationHandler(svc)
	w := postJSON(t, h.SendCode, `{"email":"foo"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["error"])
	assert.NotContains(t, body, "message")
}

func TestSendCode_DeliveryFailureMapsTo500(t *testing.T) {
	svc := &mockVerificationSvc{}
	svc.On("RequestCode", mock.Anything, "alice@example.com").
		Return(fmt.Errorf("send verification email: %w", domain.ErrDeliveryFailed))

	h := NewVerificationHandler(svc)
	w := postJSON(t, h.SendCode, `{"email":"alice@example.com"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// --- VerifyCode tests ---

func registerBody() string {
	return `{"email":"alice@example.com","code":"123456","name":"Alice","password":"password123","phone":"+1555000111"}`
}

func TestVerifyCode_HappyPath(t *testing.T) {
	svc := &mockVerificationSvc{}
	svc.On("VerifyAndRegister", mock.Anything, verification.RegisterRequest{
		Email:    "alice@example.com",
		Code:     "123456",
		Name:     "Alice",
		Password: "password123",
		Phone:    "+1555000111",
	}).Return(nil)

	h := NewVerificationHandler(svc)
	w := postJSON(t, h.VerifyCode, registerBody())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{"success": true}, decodeBody(t, w))
	svc.AssertExpectations(t)
}

func TestVerifyCode_MissingFields(t *testing.T) {
	svc := &mockVerificationSvc{}
	h := NewVerificationHandler(svc)
	w := postJSON(t, h.VerifyCode, `{"email":"alice@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "VerifyAndRegister", mock.Anything, mock.Anything)
}

func TestVerifyCode_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"no code sent", fmt.Errorf("no code sent to this email: %w", domain.ErrNoCodeSent), http.StatusBadRequest},
		{"expired", fmt.Errorf("code expired: %w", domain.ErrCodeExpired), http.StatusBadRequest},
		{"invalid code", fmt.Errorf("invalid code: %w", domain.ErrInvalidCode), http.StatusBadRequest},
		{"email taken", fmt.Errorf("email already registered: %w", domain.ErrEmailTaken), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockVerificationSvc{}
			svc.On("VerifyAndRegister", mock.Anything, mock.Anything).Return(tc.err)

			h := NewVerificationHandler(svc)
			w := postJSON(t, h.VerifyCode, registerBody())

			assert.Equal(t, tc.want, w.Code)
			assert.NotEmpty(t, decodeBody(t, w)["error"])
		})
	}
}

// --- CheckEmail tests ---

func TestCheckEmail_Exists(t *testing.T) {
	svc := &mockVerificationSvc{}
	svc.On("CheckEmailExists", mock.Anything, "alice@example.com").Return(true, nil)

	h := NewVerificationHandler(svc)
	w := postJSON(t, h.CheckEmail, `{"email":"alice@example.com"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{"exists": true}, decodeBody(t, w))
}

func TestCheckEmail_NotRegistered(t *testing.T) {
	svc := &mockVerificationSvc{}
	svc.On("CheckEmailExists", mock.Anything, "bob@example.com").Return(false, nil)

	h := NewVerificationHandler(svc)
	w := postJSON(t, h.CheckEmail, `{"email":"bob@example.com"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{"exists": false}, decodeBody(t, w))
}

func TestCheckEmail_InvalidEmailMapsTo400(t *testing.T) {
	svc := &mockVerificationSvc{}
	svc.On("CheckEmailExists", mock.Anything, "a@b").
		Return(false, fmt.Errorf("invalid email address: %w", domain.ErrInvalidEmail))

	h := NewVerificationHandler(svc)
	w := postJSON(t, h.CheckEmail, `{"email":"a@b"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
