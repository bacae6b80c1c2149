package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/pkg/campussdk"
	"github.com/aussiebroadwan/campus/pkg/httpx"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

// writeServiceError maps service sentinels onto status codes. Anything
// unrecognised is logged and reported as a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, desc := http.StatusInternalServerError, campussdk.ErrorCodeServerError, "Internal server error"

	switch {
	case errors.Is(err, service.ErrMissingFields):
		status, code, desc = http.StatusBadRequest, campussdk.ErrorCodeMissingFields, "Missing required fields"
	case errors.Is(err, service.ErrPasswordTooShort):
		status, code, desc = http.StatusBadRequest, campussdk.ErrorCodePasswordTooShort, "Password must be at least 6 characters"
	case errors.Is(err, service.ErrPasswordTooLong):
		status, code, desc = http.StatusBadRequest, campussdk.ErrorCodePasswordTooLong, "Password must be at most 72 bytes"
	case errors.Is(err, service.ErrToxicContent):
		status, code, desc = http.StatusBadRequest, campussdk.ErrorCodeToxicContent, "Comment contains toxic or inappropriate content"
	case errors.Is(err, service.ErrInvalidToken):
		httpx.WriteUnauthorized(w)
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		status, code, desc = http.StatusUnauthorized, campussdk.ErrorCodeInvalidCredentials, "Invalid email or password"
	case errors.Is(err, service.ErrNotQueryOwner):
		status, code, desc = http.StatusForbidden, campussdk.ErrorCodeNotQueryOwner, "You can only delete your own queries"
	case errors.Is(err, service.ErrEmailNotInstitutional):
		status, code, desc = http.StatusForbidden, campussdk.ErrorCodeNotInstitutional, "Please use your college email address"
	case errors.Is(err, service.ErrQueryNotFound):
		status, code, desc = http.StatusNotFound, campussdk.ErrorCodeQueryNotFound, "Query not found"
	case errors.Is(err, service.ErrEmailTaken):
		status, code, desc = http.StatusConflict, campussdk.ErrorCodeEmailTaken, "An account with this email already exists"
	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
	}

	httpx.WriteJSON(w, status, campussdk.ErrorResponse{
		Error:            code,
		ErrorDescription: desc,
	})
}

func writeInvalidJSON(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusBadRequest, campussdk.ErrorResponse{
		Error:            campussdk.ErrorCodeInvalidRequest,
		ErrorDescription: "Invalid JSON in request body",
	})
}

func writeValidation(w http.ResponseWriter, details map[string]string) {
	httpx.WriteJSON(w, http.StatusBadRequest, campussdk.ValidationErrorResponse{
		Code:    campussdk.ErrorCodeValidation,
		Message: "Request validation failed",
		Details: details,
	})
}
