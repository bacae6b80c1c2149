package campussdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error codes returned in ErrorResponse.Error.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeValidation         = "validation_error"
	ErrorCodeMissingFields      = "missing_fields"
	ErrorCodePasswordTooShort   = "password_too_short"
	ErrorCodePasswordTooLong    = "password_too_long"
	ErrorCodeToxicContent       = "toxic_content"
	ErrorCodeUnauthorized       = "unauthorized"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeNotInstitutional   = "email_not_institutional"
	ErrorCodeNotQueryOwner      = "not_query_owner"
	ErrorCodeQueryNotFound      = "query_not_found"
	ErrorCodeEmailTaken         = "email_taken"
	ErrorCodeServerError        = "server_error"
)

// APIError is a non-2xx response decoded by the SDK.
type APIError struct {
	StatusCode  int
	Code        string
	Description string

	// Details is set for validation errors (field -> reason).
	Details map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// StatusCodeOf returns the HTTP status of err if it is an *APIError, else 0.
func StatusCodeOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// CodeOf returns the error code of err if it is an *APIError, else "".
func CodeOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ""
}

// parseErrorResponse converts an error body into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	var valErr ValidationErrorResponse
	if err := json.Unmarshal(body, &valErr); err == nil && valErr.Code != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        valErr.Code,
			Description: valErr.Message,
			Details:     valErr.Details,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
