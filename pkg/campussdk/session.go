package campussdk

import (
	"context"
	"net/http"
	"net/url"
)

// Session is an authenticated view of the API. Tokens are not refreshed;
// once the server rejects the token the caller must log in again.
type Session struct {
	client *Client
	token  string
	user   UserInfo
}

func newSession(c *Client, resp AuthResponse) *Session {
	return &Session{client: c, token: resp.Token, user: resp.User}
}

// Token returns the bearer token.
func (s *Session) Token() string { return s.token }

// User returns the account the session was issued for. It is empty for
// sessions built with NewSessionFromToken.
func (s *Session) User() UserInfo { return s.user }

// CreateQuery posts a new query under a fresh anonymous name.
func (s *Session) CreateQuery(ctx context.Context, req CreateQueryRequest) (*QueryView, error) {
	var out CreateQueryResponse
	if err := s.postJSON(ctx, "/queries", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out.Query, nil
}

// GetQuery fetches a query as this session; IsOwner reports authorship.
func (s *Session) GetQuery(ctx context.Context, queryID string) (*QueryDetailResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/queries/"+url.PathEscape(queryID), nil, nil)
	if err != nil {
		return nil, err
	}

	var out QueryDetailResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteQuery deletes one of the session's own queries and its comments.
func (s *Session) DeleteQuery(ctx context.Context, queryID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/queries/"+url.PathEscape(queryID), nil, nil)
	if err != nil {
		return err
	}

	var out MessageResponse
	return decodeJSON(resp, &out, http.StatusOK)
}

// CreateComment posts an anonymous comment. Toxic text is rejected with
// ErrorCodeToxicContent.
func (s *Session) CreateComment(ctx context.Context, queryID, text string) (*CommentView, error) {
	var out CreateCommentResponse
	req := CreateCommentRequest{QueryID: queryID, CommentText: text}
	if err := s.postJSON(ctx, "/comments", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out.Comment, nil
}
