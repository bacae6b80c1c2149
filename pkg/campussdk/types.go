package campussdk

import "time"

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the error envelope returned by every endpoint.
type ErrorResponse struct {
	// Error is a stable machine-readable code (e.g., "query_not_found")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ValidationErrorResponse is returned when a request body fails validation.
type ValidationErrorResponse struct {
	// Code is always "validation_error"
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details maps JSON field names to the reason they were rejected
	Details map[string]string `json:"details,omitempty"`
}

// ============================================================================
// Auth Types
// ============================================================================

// SignupRequest registers a new account with an institutional email.
type SignupRequest struct {
	Email    string `json:"email" validate:"notblank,max=254"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest exchanges credentials for a session token.
type LoginRequest struct {
	Email    string `json:"email" validate:"notblank,max=254"`
	Password string `json:"password" validate:"required"`
}

// UserInfo is the signed-in account as shown to its owner.
type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthResponse is returned from signup and login.
type AuthResponse struct {
	Success bool     `json:"success"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
}

// ============================================================================
// Query Types
// ============================================================================

// CreateQueryRequest posts a new question.
type CreateQueryRequest struct {
	Section     string `json:"section" validate:"notblank,max=64"`
	Title       string `json:"title" validate:"notblank,max=300"`
	Description string `json:"description" validate:"notblank,max=10000"`
}

// QuerySummary is a query as it appears in listings.
type QuerySummary struct {
	QueryID       string    `json:"query_id"`
	Section       string    `json:"section"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	AnonymousName string    `json:"anonymous_name"`
	CreatedAt     time.Time `json:"created_at"`
	CommentCount  int       `json:"comment_count"`
}

// ListQueriesResponse wraps GET /queries.
type ListQueriesResponse struct {
	Queries []QuerySummary `json:"queries"`
}

// QueryView is a single query. IsOwner is true only for the creator's own token.
type QueryView struct {
	QueryID       string    `json:"query_id"`
	Section       string    `json:"section"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	AnonymousName string    `json:"anonymous_name"`
	CreatedAt     time.Time `json:"created_at"`
	IsOwner       bool      `json:"is_owner"`
}

// QueryDetailResponse wraps GET /queries/{id}.
type QueryDetailResponse struct {
	Query    QueryView     `json:"query"`
	Comments []CommentView `json:"comments"`
}

// CreateQueryResponse wraps POST /queries.
type CreateQueryResponse struct {
	Success bool      `json:"success"`
	Query   QueryView `json:"query"`
}

// MessageResponse is a generic success acknowledgement.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ============================================================================
// Comment Types
// ============================================================================

// CreateCommentRequest posts an anonymous comment on a query.
type CreateCommentRequest struct {
	QueryID     string `json:"query_id" validate:"notblank"`
	CommentText string `json:"comment_text" validate:"notblank,max=5000"`
}

// CommentView is a comment as returned to clients.
type CommentView struct {
	CommentID     string    `json:"comment_id"`
	QueryID       string    `json:"query_id"`
	CommentText   string    `json:"comment_text"`
	AnonymousName string    `json:"anonymous_name"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateCommentResponse wraps POST /comments.
type CreateCommentResponse struct {
	Success bool        `json:"success"`
	Comment CommentView `json:"comment"`
}

// ============================================================================
// Maintenance Types
// ============================================================================

// CleanupResponse wraps POST /cleanup.
type CleanupResponse struct {
	Success      bool   `json:"success"`
	DeletedCount int    `json:"deleted_count"`
	Message      string `json:"message"`
}

// SectionsResponse lists the suggested sections.
type SectionsResponse struct {
	Sections []string `json:"sections"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz (readyz includes Checks).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	Database   string `json:"database"`
	Moderation string `json:"moderation,omitempty"`
}
