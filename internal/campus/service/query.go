package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/metrics"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/pkg/idx"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

// NameGenerator produces anonymous display names.
type NameGenerator interface {
	Generate() string
}

type QueryService struct {
	Store store.Store
	Names NameGenerator
	Clock Clock
}

// NewQuery is the caller-supplied part of a query.
type NewQuery struct {
	Section     string
	Title       string
	Description string
}

// List returns queries newest first, optionally restricted to one section.
func (s *QueryService) List(ctx context.Context, section string) ([]domain.QuerySummary, error) {
	return s.Store.Queries().ListQueries(ctx, strings.TrimSpace(section))
}

// Get returns a query with its comments. IsOwner is only true when viewerID
// names the creator; pass "" for anonymous viewers. A malformed id is
// reported as not found without touching the store.
func (s *QueryService) Get(ctx context.Context, id, viewerID string) (domain.QueryDetail, error) {
	qid, err := idx.Parse(id)
	if err != nil {
		return domain.QueryDetail{}, ErrQueryNotFound
	}

	q, err := s.Store.Queries().GetQuery(ctx, qid.String())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.QueryDetail{}, ErrQueryNotFound
		}
		return domain.QueryDetail{}, fmt.Errorf("get query: %w", err)
	}

	comments, err := s.Store.Comments().ListCommentsByQuery(ctx, q.ID)
	if err != nil {
		return domain.QueryDetail{}, fmt.Errorf("list comments: %w", err)
	}

	return domain.QueryDetail{
		Query:    q,
		Comments: comments,
		IsOwner:  domain.SameAccount(viewerID, q.CreatorID),
	}, nil
}

// Create posts a query on behalf of creatorID under a fresh anonymous name.
func (s *QueryService) Create(ctx context.Context, creatorID string, in NewQuery) (domain.Query, error) {
	in.Section = strings.TrimSpace(in.Section)
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)

	if in.Section == "" || in.Title == "" || in.Description == "" {
		return domain.Query{}, ErrMissingFields
	}
	if idx.Canonical(creatorID) == "" {
		return domain.Query{}, ErrInvalidToken
	}

	now := s.Clock.now()
	q := domain.Query{
		ID:            idx.NewAt(now).String(),
		Section:       in.Section,
		Title:         in.Title,
		Description:   in.Description,
		AnonymousName: s.Names.Generate(),
		CreatorID:     idx.Canonical(creatorID),
		CreatedAt:     now,
	}
	if err := s.Store.Queries().CreateQuery(ctx, q); err != nil {
		return domain.Query{}, fmt.Errorf("create query: %w", err)
	}

	metrics.QueriesCreated.Inc()
	slogx.FromContext(ctx).Info("query created", "query_id", q.ID, "section", q.Section)
	return q, nil
}

// Delete removes a query and its comments if callerID created it. Nothing
// changes when the caller is not the owner.
func (s *QueryService) Delete(ctx context.Context, id, callerID string) error {
	qid, err := idx.Parse(id)
	if err != nil {
		return ErrQueryNotFound
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		q, err := tx.Queries().GetQuery(ctx, qid.String())
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrQueryNotFound
			}
			return fmt.Errorf("get query: %w", err)
		}

		if !domain.SameAccount(callerID, q.CreatorID) {
			return ErrNotQueryOwner
		}

		return deleteQueryTx(ctx, tx, q.ID)
	})
	if err != nil {
		return err
	}

	metrics.QueriesDeleted.WithLabelValues("owner").Inc()
	slogx.FromContext(ctx).Info("query deleted", "query_id", qid)
	return nil
}

// deleteQueryTx removes comments first, then the query, inside tx.
func deleteQueryTx(ctx context.Context, tx store.Tx, queryID string) error {
	if _, err := tx.Comments().DeleteCommentsByQuery(ctx, queryID); err != nil {
		return fmt.Errorf("delete comments: %w", err)
	}
	if err := tx.Queries().DeleteQuery(ctx, queryID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrQueryNotFound
		}
		return fmt.Errorf("delete query: %w", err)
	}
	return nil
}
