package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/metrics"
	"github.com/aussiebroadwan/campus/internal/campus/moderation"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/pkg/idx"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

type CommentService struct {
	Store store.Store
	Names NameGenerator
	Clock Clock

	// Filter is optional; nil disables toxicity screening.
	Filter moderation.Filter
}

// Create posts a comment on an existing query. Toxic text is rejected
// before anything is written. A malformed query id is not found.
func (s *CommentService) Create(ctx context.Context, creatorID, queryID, text string) (domain.Comment, error) {
	text = strings.TrimSpace(text)

	if idx.Canonical(queryID) == "" || text == "" {
		return domain.Comment{}, ErrMissingFields
	}
	if idx.Canonical(creatorID) == "" {
		return domain.Comment{}, ErrInvalidToken
	}

	qid, err := idx.Parse(queryID)
	if err != nil {
		return domain.Comment{}, ErrQueryNotFound
	}
	queryID = qid.String()

	if _, err := s.Store.Queries().GetQuery(ctx, queryID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Comment{}, ErrQueryNotFound
		}
		return domain.Comment{}, fmt.Errorf("get query: %w", err)
	}

	if s.Filter != nil {
		res := s.Filter.Check(ctx, text)
		if res.Err != nil {
			slogx.FromContext(ctx).Warn("toxicity filter unavailable, accepting comment", "error", res.Err)
		}
		if res.IsToxic {
			metrics.CommentsRejected.Inc()
			slogx.FromContext(ctx).Info("comment rejected as toxic", "query_id", queryID, "score", res.Score)
			return domain.Comment{}, ErrToxicContent
		}
	}

	now := s.Clock.now()
	c := domain.Comment{
		ID:            idx.NewAt(now).String(),
		QueryID:       queryID,
		Text:          text,
		AnonymousName: s.Names.Generate(),
		CreatorID:     idx.Canonical(creatorID),
		CreatedAt:     now,
	}
	if err := s.Store.Comments().CreateComment(ctx, c); err != nil {
		// The query can vanish between the check and the insert
		if errors.Is(err, store.ErrNotFound) {
			return domain.Comment{}, ErrQueryNotFound
		}
		return domain.Comment{}, fmt.Errorf("create comment: %w", err)
	}

	metrics.CommentsCreated.Inc()
	return c, nil
}
