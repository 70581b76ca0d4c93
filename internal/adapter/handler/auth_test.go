package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kimdohyun-dev/actionlog/errors"
	"github.com/kimdohyun-dev/actionlog/internal/domain/entities"
	"github.com/kimdohyun-dev/actionlog/internal/usecase/auth"
	pkgjwt "github.com/kimdohyun-dev/actionlog/pkg/jwt"
	pkgvalidator "github.com/kimdohyun-dev/actionlog/pkg/validator"
)

type memoryUserRepo struct {
	users map[string]*entities.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*entities.User)}
}

func (r *memoryUserRepo) Create(_ context.Context, user *entities.User) error {
	r.users[user.LoginID] = user
	return nil
}

func (r *memoryUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (r *memoryUserRepo) FindByLoginID(_ context.Context, loginID string) (*entities.User, error) {
	if u, ok := r.users[loginID]; ok {
		return u, nil
	}
	return nil, entities.ErrUserNotFound
}

func (r *memoryUserRepo) ExistsByLoginID(_ context.Context, loginID string) (bool, error) {
	_, ok := r.users[loginID]
	return ok, nil
}

func (r *memoryUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func newAuthHandler() *Auth {
	repo := newMemoryUserRepo()
	tokens := pkgjwt.NewManager("test-secret", time.Hour)
	svc := auth.NewService(repo, tokens, zap.NewNop())
	return NewAuth(svc, zap.NewNop())
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = pkgvalidator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h(c))
	return rec
}

const signupBody = `{"loginId":"alice","password":"password123","name":"Alice","email":"alice@example.com"}`

func TestSignupHandler_Created(t *testing.T) {
	h := newAuthHandler()

	rec := doJSON(t, h.Signup, http.MethodPost, "/api/auth/signup", signupBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signup successful", resp["message"])
}

func TestSignupHandler_Duplicate(t *testing.T) {
	h := newAuthHandler()

	rec := doJSON(t, h.Signup, http.MethodPost, "/api/auth/signup", signupBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h.Signup, http.MethodPost, "/api/auth/signup", signupBody)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, errors.ErrorCode_AUTH_DUPLICATE_LOGIN_ID, resp["code"])
}

func TestSignupHandler_InvalidLoginID(t *testing.T) {
	h := newAuthHandler()

	body := `{"loginId":"not valid!","password":"password123","name":"Alice","email":"alice@example.com"}`
	rec := doJSON(t, h.Signup, http.MethodPost, "/api/auth/signup", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginHandler_Success(t *testing.T) {
	h := newAuthHandler()

	rec := doJSON(t, h.Signup, http.MethodPost, "/api/auth/signup", signupBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h.Login, http.MethodPost, "/api/auth/login", `{"loginId":"alice","password":"password123"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["accessToken"])
	assert.Equal(t, "alice", resp["loginId"])
	assert.Equal(t, "Alice", resp["name"])
}

func TestLoginHandler_BadCredentials(t *testing.T) {
	h := newAuthHandler()

	rec := doJSON(t, h.Signup, http.MethodPost, "/api/auth/signup", signupBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h.Login, http.MethodPost, "/api/auth/login", `{"loginId":"alice","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
