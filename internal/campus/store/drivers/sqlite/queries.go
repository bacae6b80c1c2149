package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
)

type queriesRepo struct {
	db dbtx
}

const createQuery = `
INSERT INTO queries (id, section, title, description, anonymous_name, creator_id, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`

func (r *queriesRepo) CreateQuery(ctx context.Context, q domain.Query) error {
	_, err := r.db.ExecContext(ctx, createQuery,
		q.ID, q.Section, q.Title, q.Description, q.AnonymousName, q.CreatorID, toMillis(q.CreatedAt),
	)
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

const getQuery = `
SELECT id, section, title, description, anonymous_name, creator_id, created_at
FROM queries
WHERE id = ?`

func (r *queriesRepo) GetQuery(ctx context.Context, id string) (domain.Query, error) {
	var (
		q         domain.Query
		createdAt int64
	)
	err := r.db.QueryRowContext(ctx, getQuery, id).Scan(
		&q.ID, &q.Section, &q.Title, &q.Description, &q.AnonymousName, &q.CreatorID, &createdAt,
	)
	if err != nil {
		return domain.Query{}, mapNotFound(err)
	}
	q.CreatedAt = fromMillis(createdAt)
	return q, nil
}

const listQueries = `
SELECT q.id, q.section, q.title, q.description, q.anonymous_name, q.creator_id, q.created_at,
       COUNT(c.id) AS comment_count
FROM queries q
LEFT JOIN comments c ON c.query_id = q.id
WHERE (? = '' OR q.section = ?)
GROUP BY q.id
ORDER BY q.created_at DESC, q.id DESC`

func (r *queriesRepo) ListQueries(ctx context.Context, section string) ([]domain.QuerySummary, error) {
	rows, err := r.db.QueryContext(ctx, listQueries, section, section)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make([]domain.QuerySummary, 0)
	for rows.Next() {
		var (
			s         domain.QuerySummary
			createdAt int64
		)
		if err := rows.Scan(
			&s.ID, &s.Section, &s.Title, &s.Description, &s.AnonymousName, &s.CreatorID, &createdAt,
			&s.CommentCount,
		); err != nil {
			return nil, err
		}
		s.CreatedAt = fromMillis(createdAt)
		out = append(out, s)
	}
	return out, rows.Err()
}

const listQueryIDsCreatedBefore = `
SELECT id FROM queries WHERE created_at < ? ORDER BY created_at, id`

func (r *queriesRepo) ListQueryIDsCreatedBefore(ctx context.Context, cutoff time.Time) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, listQueryIDsCreatedBefore, toMillis(cutoff))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

const deleteQuery = `DELETE FROM queries WHERE id = ?`

func (r *queriesRepo) DeleteQuery(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteQuery, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
