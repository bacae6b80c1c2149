package http

import (
	"net/http"

	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/pkg/campussdk"
	"github.com/aussiebroadwan/campus/pkg/httpx"
)

type CommentsHandler struct {
	CommentService *service.CommentService
}

// HandleCreate handles POST /comments
//
//	@Summary		Create comment
//	@Description	Posts an anonymous comment on a query. Text scored as toxic is rejected and not stored.
//	@Tags			Comments
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		campussdk.CreateCommentRequest		true	"Query ID and comment text"
//	@Success		201		{object}	campussdk.CreateCommentResponse		"success, comment"
//	@Failure		400		{object}	campussdk.ErrorResponse				"toxic content"
//	@Failure		400		{object}	campussdk.ValidationErrorResponse	"missing fields"
//	@Failure		401		{object}	campussdk.ErrorResponse				"error, error_description"
//	@Failure		404		{object}	campussdk.ErrorResponse				"query not found"
//	@Failure		500		{object}	campussdk.ErrorResponse				"error, error_description"
//	@Router			/comments [post].
func (h *CommentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req campussdk.CreateCommentRequest
	if err := httpx.DecodeJSON(w, r, maxBodyBytes, &req); err != nil {
		writeInvalidJSON(w)
		return
	}
	if details := req.Validate(); details != nil {
		writeValidation(w, details)
		return
	}

	c, err := h.CommentService.Create(ctx, httpx.AccountIDFromContext(ctx), req.QueryID, req.CommentText)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, campussdk.CreateCommentResponse{
		Success: true,
		Comment: toCommentView(c),
	})
}
