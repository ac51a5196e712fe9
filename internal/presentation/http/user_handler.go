package http

import (
	"errors"
	"net/http"

	appaccount "github.com/aromahub/perfumeshop/internal/application/account"
	"github.com/gin-gonic/gin"
)

// UserHandler exposes the user service routes.
type UserHandler struct {
	svc *appaccount.Service
}

func NewUserHandler(svc *appaccount.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Register(r *gin.Engine) {
	r.POST("/register", h.register)
	r.POST("/login", h.login)
	r.GET("/me", BearerAuth(h.svc), h.me)
	r.GET("/health", h.health)
	r.GET("/", h.index)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields required"})
		return
	}

	result, err := h.svc.Register(c.Request.Context(), appaccount.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, appaccount.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"message": "All fields required"})
		case errors.Is(err, appaccount.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Registered successfully!",
		"token":     result.Token.Token,
		"exp":       result.Token.ExpiresAt,
		"expiresIn": result.Token.ExpiresIn,
		"user":      result.Account.Public(),
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password required"})
		return
	}

	result, err := h.svc.Login(c.Request.Context(), appaccount.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, appaccount.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password required"})
		case errors.Is(err, appaccount.ErrInvalidCredentials):
			// Identical body for unknown email and wrong password.
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Login successful!",
		"token":     result.Token.Token,
		"exp":       result.Token.ExpiresAt,
		"expiresIn": result.Token.ExpiresIn,
		"user":      result.Account.Public(),
	})
}

func (h *UserHandler) me(c *gin.Context) {
	claims, ok := claimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token required"})
		return
	}

	acct, err := h.svc.CurrentAccount(c.Request.Context(), claims.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": acct.Public()})
}

func (h *UserHandler) health(c *gin.Context) {
	dbState := 1
	if err := h.svc.Ping(c.Request.Context()); err != nil {
		dbState = 0
	}
	c.JSON(http.StatusOK, gin.H{"status": "User Service OK", "dbState": dbState})
}

func (h *UserHandler) index(c *gin.Context) {
	c.String(http.StatusOK,
		"User Service\n"+
			"POST /register -> {name, email, password}\n"+
			"POST /login -> {email, password}\n"+
			"GET /me -> Authorization: Bearer <token>\n")
}
