// Package handlers contains the HTTP request handlers for the REST API.
package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"freshtrack-backend/application/services"
	"freshtrack-backend/pkg/common"
	"freshtrack-backend/pkg/utils"
)

const maxBodyBytes = 1 << 20

// AuthHandler handles registration and login requests
type AuthHandler struct {
	auth   *services.AuthService
	logger *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *services.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		logger: logger,
	}
}

// credentialsRequest is the request body for both register and login.
type credentialsRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.auth.Register(r.Context(), req.Email, req.Password); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondMessage(w, http.StatusCreated,
		"User registered successfully. Please check your email to confirm notification subscription.")
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		common.RespondMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{"token": token})
}
