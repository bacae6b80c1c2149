package http

import (
	"net/http"

	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/pkg/campussdk"
	"github.com/aussiebroadwan/campus/pkg/httpx"
)

// AuthHandler handles signup and login.
type AuthHandler struct {
	AccountService *service.AccountService
}

// HandleSignup handles POST /auth/signup
//
//	@Summary		Sign up
//	@Description	Registers an account for an institutional email (.edu or .ac.in by default) and returns a session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		campussdk.SignupRequest				true	"Email and password"
//	@Success		201		{object}	campussdk.AuthResponse				"success, token, user"
//	@Failure		400		{object}	campussdk.ErrorResponse				"password too short or too long, bad JSON"
//	@Failure		400		{object}	campussdk.ValidationErrorResponse	"missing fields"
//	@Failure		403		{object}	campussdk.ErrorResponse				"email is not institutional"
//	@Failure		409		{object}	campussdk.ErrorResponse				"email already registered"
//	@Failure		500		{object}	campussdk.ErrorResponse				"error, error_description"
//	@Router			/auth/signup [post].
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req campussdk.SignupRequest
	if err := httpx.DecodeJSON(w, r, maxBodyBytes, &req); err != nil {
		writeInvalidJSON(w)
		return
	}
	if details := req.Validate(); details != nil {
		writeValidation(w, details)
		return
	}

	res, err := h.AccountService.Signup(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, authResponse(res))
}

// HandleLogin handles POST /auth/login
//
//	@Summary		Log in
//	@Description	Exchanges email and password for a session token. Every mismatch returns the same 401.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		campussdk.LoginRequest				true	"Email and password"
//	@Success		200		{object}	campussdk.AuthResponse				"success, token, user"
//	@Failure		400		{object}	campussdk.ValidationErrorResponse	"missing fields"
//	@Failure		401		{object}	campussdk.ErrorResponse				"invalid credentials"
//	@Failure		500		{object}	campussdk.ErrorResponse				"error, error_description"
//	@Router			/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req campussdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, maxBodyBytes, &req); err != nil {
		writeInvalidJSON(w)
		return
	}
	if details := req.Validate(); details != nil {
		writeValidation(w, details)
		return
	}

	res, err := h.AccountService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authResponse(res))
}

func authResponse(res service.AuthResult) campussdk.AuthResponse {
	return campussdk.AuthResponse{
		Success: true,
		Token:   res.Token,
		User: campussdk.UserInfo{
			ID:    res.Account.ID,
			Email: res.Account.Email,
		},
	}
}
