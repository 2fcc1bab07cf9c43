package server

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rakhadjo/feedsight/internal/auth"
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthHandlers serves login and registration. Messages are user-facing
// and localized, so they must stay byte-for-byte stable.
type AuthHandlers struct {
	auth   Authenticator
	logger *zap.Logger
}

func NewAuthHandlers(a Authenticator, logger *zap.Logger) *AuthHandlers {
	if a == nil {
		panic("nil Authenticator provided to NewAuthHandlers")
	}
	return &AuthHandlers{auth: a, logger: logger.Named("auth-handler")}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (h *AuthHandlers) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email dan password harus diisi"})
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email dan password harus diisi"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultRequestTimeout)
	defer cancel()

	user, session, err := h.auth.SignIn(ctx, req.Email, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"message": "Login berhasil",
			"user":    user,
			"session": session,
		})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email atau password salah"})
	case errors.Is(err, auth.ErrEmailNotConfirmed):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email belum dikonfirmasi. Silakan cek email Anda."})
	default:
		h.logger.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan server"})
	}
}

// Register uses a success/message envelope, unlike Login. The asymmetry
// mirrors what the dashboard client expects from each route.
func (h *AuthHandlers) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email, password, dan konfirmasi password harus diisi"})
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	switch {
	case req.Email == "" || req.Password == "" || req.ConfirmPassword == "":
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email, password, dan konfirmasi password harus diisi"})
		return
	case !emailPattern.MatchString(req.Email):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Format email tidak valid"})
		return
	case req.Password != req.ConfirmPassword:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Password dan konfirmasi password tidak cocok"})
		return
	case len(req.Password) < minPasswordLength:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Password harus minimal 6 karakter"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultRequestTimeout)
	defer cancel()

	user, session, err := h.auth.SignUp(ctx, req.Email, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Registrasi berhasil! Anda sudah bisa login",
			"user":    user,
			"session": session,
		})
	case errors.Is(err, auth.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email sudah terdaftar. Silakan gunakan email lain atau login"})
	default:
		h.logger.Error("registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Terjadi kesalahan server"})
	}
}

// LoginDocs answers GET probes on the login route with a usage sketch.
func (h *AuthHandlers) LoginDocs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Login API endpoint",
		"methods": []string{"POST"},
		"body":    gin.H{"email": "string", "password": "string"},
	})
}

// RegisterDocs answers GET probes on the register route with a usage sketch.
func (h *AuthHandlers) RegisterDocs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Register API endpoint",
		"method":  "POST",
		"body": gin.H{
			"email":           "string (required)",
			"password":        "string (required)",
			"confirmPassword": "string (required)",
		},
		"responses": gin.H{
			"201": "Registrasi berhasil",
			"400": "Bad request - validasi gagal",
			"500": "Server error",
		},
	})
}
