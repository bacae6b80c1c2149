package http

import (
	"net/http"

	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/pkg/campussdk"
	"github.com/aussiebroadwan/campus/pkg/httpx"
)

// QueriesHandler handles all query endpoints.
type QueriesHandler struct {
	QueryService *service.QueryService
}

// HandleList handles GET /queries
//
//	@Summary		List queries
//	@Description	Lists queries newest first with their comment counts, optionally filtered by section.
//	@Tags			Queries
//	@Produce		json
//	@Param			section	query		string							false	"Exact section name"
//	@Success		200		{object}	campussdk.ListQueriesResponse	"queries"
//	@Failure		500		{object}	campussdk.ErrorResponse			"error, error_description"
//	@Router			/queries [get].
func (h *QueriesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	qs, err := h.QueryService.List(r.Context(), r.URL.Query().Get("section"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := campussdk.ListQueriesResponse{Queries: make([]campussdk.QuerySummary, 0, len(qs))}
	for _, q := range qs {
		out.Queries = append(out.Queries, toQuerySummary(q))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /queries/{id}
//
//	@Summary		Get query
//	@Description	Returns a query with its comments oldest first. is_owner is true only when the bearer token belongs to the creator.
//	@Tags			Queries
//	@Produce		json
//	@Param			id				path		string							true	"Query ID"
//	@Param			Authorization	header		string							false	"Optional bearer token"
//	@Success		200				{object}	campussdk.QueryDetailResponse	"query, comments"
//	@Failure		404				{object}	campussdk.ErrorResponse			"query not found"
//	@Failure		500				{object}	campussdk.ErrorResponse			"error, error_description"
//	@Router			/queries/{id} [get].
func (h *QueriesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	detail, err := h.QueryService.Get(ctx, r.PathValue("id"), httpx.AccountIDFromContext(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := campussdk.QueryDetailResponse{
		Query:    toQueryView(detail.Query, detail.IsOwner),
		Comments: make([]campussdk.CommentView, 0, len(detail.Comments)),
	}
	for _, c := range detail.Comments {
		out.Comments = append(out.Comments, toCommentView(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate handles POST /queries
//
//	@Summary		Create query
//	@Description	Posts a query under a freshly generated anonymous name.
//	@Tags			Queries
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		campussdk.CreateQueryRequest		true	"Section, title and description"
//	@Success		201		{object}	campussdk.CreateQueryResponse		"success, query"
//	@Failure		400		{object}	campussdk.ValidationErrorResponse	"missing fields"
//	@Failure		401		{object}	campussdk.ErrorResponse				"error, error_description"
//	@Failure		500		{object}	campussdk.ErrorResponse				"error, error_description"
//	@Router			/queries [post].
func (h *QueriesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req campussdk.CreateQueryRequest
	if err := httpx.DecodeJSON(w, r, maxBodyBytes, &req); err != nil {
		writeInvalidJSON(w)
		return
	}
	if details := req.Validate(); details != nil {
		writeValidation(w, details)
		return
	}

	q, err := h.QueryService.Create(ctx, httpx.AccountIDFromContext(ctx), service.NewQuery{
		Section:     req.Section,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, campussdk.CreateQueryResponse{
		Success: true,
		Query:   toQueryView(q, true),
	})
}

// HandleDelete handles DELETE /queries/{id}
//
//	@Summary		Delete query
//	@Description	Deletes one of the caller's own queries together with its comments.
//	@Tags			Queries
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string						true	"Query ID"
//	@Success		200	{object}	campussdk.MessageResponse	"success, message"
//	@Failure		401	{object}	campussdk.ErrorResponse		"error, error_description"
//	@Failure		403	{object}	campussdk.ErrorResponse		"caller is not the creator"
//	@Failure		404	{object}	campussdk.ErrorResponse		"query not found"
//	@Failure		500	{object}	campussdk.ErrorResponse		"error, error_description"
//	@Router			/queries/{id} [delete].
func (h *QueriesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.QueryService.Delete(ctx, r.PathValue("id"), httpx.AccountIDFromContext(ctx)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, campussdk.MessageResponse{
		Success: true,
		Message: "Query deleted successfully",
	})
}
