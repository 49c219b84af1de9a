package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"herald/pkg/api/common"
	"herald/pkg/auth"
	"herald/pkg/models"
)

const uniqueViolation = "23505"

// Register creates a creator account and signs the caller in.
func (h *Handlers) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.logger.WithError(err).Error("Failed to hash password")
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: "Failed to create account"})
		return
	}

	user := models.User{Email: req.Email, Name: req.Name}
	err = h.db.QueryRow(`
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, $2, $3)
		RETURNING id, role, is_active, created_at, updated_at`,
		req.Email, hash, req.Name,
	).Scan(&user.ID, &user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			c.JSON(http.StatusConflict, common.ErrorResponse{Error: "An account with this email already exists"})
			return
		}
		h.logger.WithError(err).Error("Failed to create user")
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: "Failed to create account"})
		return
	}

	h.metrics.RecordSignup()
	h.issueSession(c, user, http.StatusCreated)
}

// Login verifies credentials and issues a session token.
func (h *Handlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	var user models.User
	err := h.db.QueryRow(`
		SELECT id, email, password_hash, COALESCE(name, ''), role, is_active, created_at, updated_at
		FROM users WHERE email = $1`,
		req.Email,
	).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			h.logger.WithError(err).Error("Failed to load user for login")
		}
		h.metrics.RecordLogin("failure")
		c.JSON(http.StatusUnauthorized, common.ErrorResponse{Error: "Invalid email or password"})
		return
	}

	if !user.IsActive || !auth.CheckPassword(req.Password, user.PasswordHash) {
		h.metrics.RecordLogin("failure")
		c.JSON(http.StatusUnauthorized, common.ErrorResponse{Error: "Invalid email or password"})
		return
	}

	if _, err := h.db.Exec(`UPDATE users SET last_login = NOW() WHERE id = $1`, user.ID); err != nil {
		h.logger.WithError(err).Warn("Failed to record last login")
	}

	h.metrics.RecordLogin("success")
	h.issueSession(c, user, http.StatusOK)
}

// GetMe returns the authenticated user's profile.
func (h *Handlers) GetMe(c *gin.Context) {
	var user models.User
	err := h.db.QueryRow(`
		SELECT id, email, COALESCE(name, ''), role, is_active, last_login, created_at, updated_at
		FROM users WHERE id = $1`,
		h.userID(c),
	).Scan(&user.ID, &user.Email, &user.Name, &user.Role, &user.IsActive, &user.LastLoginAt, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, common.ErrorResponse{Error: "User not found"})
			return
		}
		h.logger.WithError(err).Error("Failed to load user")
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: "Failed to load user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handlers) issueSession(c *gin.Context, user models.User, status int) {
	token, err := auth.GenerateJWT(user.ID, user.Email, user.Role, h.jwtSecret)
	if err != nil {
		h.logger.WithError(err).Error("Failed to sign session token")
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: "Failed to create session"})
		return
	}

	c.SetCookie("access_token", token, int(auth.TokenTTL.Seconds()), "/", "", false, true)
	c.JSON(status, models.AuthResponse{
		Token:     token,
		User:      user,
		ExpiresAt: time.Now().Add(auth.TokenTTL),
	})
}
