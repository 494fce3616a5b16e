package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"servicebook/internal/domain/auth"
	"servicebook/internal/transport/http/api"
	"servicebook/internal/transport/http/middleware"
	"servicebook/internal/transport/http/shared"
)

type Handler struct {
	Service  *auth.Service
	Secret   string
	TokenTTL time.Duration
}

func NewHandler(service *auth.Service, secret string, ttl time.Duration) *Handler {
	return &Handler{Service: service, Secret: secret, TokenTTL: ttl}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.handleLogin)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("username", payload.Username, "username is required")
	v.Required("password", payload.Password, "password is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	result, err := h.Service.Login(r.Context(), payload.Username, payload.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid username or password", middleware.GetRequestID(r.Context()))
		return
	}
	if errors.Is(err, auth.ErrInactiveAccount) {
		api.Fail(w, http.StatusForbidden, "account_inactive", "account is inactive", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "login_failed", "login failed", middleware.GetRequestID(r.Context()))
		return
	}

	token, err := auth.GenerateToken(h.Secret, auth.Claims{
		UserID:     result.User.ID,
		Username:   result.User.Username,
		EmployeeID: result.EmployeeID,
		Staff:      result.User.IsStaff,
	}, h.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "login_failed", "login failed", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"token":      token,
		"userId":     result.User.ID,
		"username":   result.User.Username,
		"employeeId": result.EmployeeID,
		"staff":      result.User.IsStaff,
	}, middleware.GetRequestID(r.Context()))
}
