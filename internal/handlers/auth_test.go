package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"herald/pkg/auth"
	"herald/pkg/models"
)

func authRouter(h *Handlers) *gin.Engine {
	router := gin.New()
	router.POST("/api/register", h.Register)
	router.POST("/api/login", h.Login)
	router.GET("/api/me", authAs(testUserID), h.GetMe)
	return router
}

func TestRegister(t *testing.T) {
	h, mock := newTestHandlers(t, nil)
	router := authRouter(h)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"id", "role", "is_active", "created_at", "updated_at"}).
			AddRow(testUserID, "creator", true, now, now))

	w := performJSON(router, http.MethodPost, "/api/register",
		`{"email": "jo@example.com", "password": "longenough1", "name": "Jo"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a session token")
	}
	if resp.User.Email != "jo@example.com" || resp.User.Role != "creator" {
		t.Errorf("unexpected user: %+v", resp.User)
	}

	claims, err := auth.ValidateJWT(resp.Token, []byte("test-secret"))
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if claims.UserID != testUserID {
		t.Errorf("expected user id in claims, got %q", claims.UserID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	h, mock := newTestHandlers(t, nil)
	router := authRouter(h)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505"})

	w := performJSON(router, http.MethodPost, "/api/register",
		`{"email": "jo@example.com", "password": "longenough1"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	h, _ := newTestHandlers(t, nil)
	router := authRouter(h)

	w := performJSON(router, http.MethodPost, "/api/register",
		`{"email": "jo@example.com", "password": "short"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestLogin(t *testing.T) {
	h, mock := newTestHandlers(t, nil)
	router := authRouter(h)

	hash, err := auth.HashPassword("correct-horse", 4)
	if err != nil {
		t.Fatal(err)
	}
	now := time.Now()
	mock.ExpectQuery("SELECT id, email, password_hash").
		WithArgs("jo@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "role", "is_active", "created_at", "updated_at"}).
			AddRow(testUserID, "jo@example.com", hash, "Jo", "creator", true, now, now))
	mock.ExpectExec("UPDATE users SET last_login").
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := performJSON(router, http.MethodPost, "/api/login",
		`{"email": "jo@example.com", "password": "correct-horse"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Token == "" {
		t.Error("expected a session token")
	}
	if resp.User.PasswordHash != "" {
		t.Error("password hash must never be serialized")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	h, mock := newTestHandlers(t, nil)
	router := authRouter(h)

	hash, err := auth.HashPassword("correct-horse", 4)
	if err != nil {
		t.Fatal(err)
	}
	now := time.Now()
	mock.ExpectQuery("SELECT id, email, password_hash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "role", "is_active", "created_at", "updated_at"}).
			AddRow(testUserID, "jo@example.com", hash, "Jo", "creator", true, now, now))

	w := performJSON(router, http.MethodPost, "/api/login",
		`{"email": "jo@example.com", "password": "wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	h, mock := newTestHandlers(t, nil)
	router := authRouter(h)

	mock.ExpectQuery("SELECT id, email, password_hash").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := performJSON(router, http.MethodPost, "/api/login",
		`{"email": "nobody@example.com", "password": "whatever"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestGetMe(t *testing.T) {
	h, mock := newTestHandlers(t, nil)
	router := authRouter(h)

	now := time.Now()
	mock.ExpectQuery("SELECT id, email,").
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "role", "is_active", "last_login", "created_at", "updated_at"}).
			AddRow(testUserID, "jo@example.com", "Jo", "creator", true, nil, now, now))

	w := performJSON(router, http.MethodGet, "/api/me", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var user models.User
	if err := json.Unmarshal(w.Body.Bytes(), &user); err != nil {
		t.Fatal(err)
	}
	if user.ID != testUserID {
		t.Errorf("unexpected user id %q", user.ID)
	}
}
