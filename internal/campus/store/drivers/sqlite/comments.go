package sqlite

import (
	"context"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
)

type commentsRepo struct {
	db dbtx
}

const createComment = `
INSERT INTO comments (id, query_id, comment_text, anonymous_name, creator_id, created_at)
VALUES (?, ?, ?, ?, ?, ?)`

// CreateComment returns store.ErrNotFound when the parent query is gone.
func (r *commentsRepo) CreateComment(ctx context.Context, c domain.Comment) error {
	_, err := r.db.ExecContext(ctx, createComment,
		c.ID, c.QueryID, c.Text, c.AnonymousName, c.CreatorID, toMillis(c.CreatedAt),
	)
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

const listCommentsByQuery = `
SELECT id, query_id, comment_text, anonymous_name, creator_id, created_at
FROM comments
WHERE query_id = ?
ORDER BY created_at ASC, id ASC`

func (r *commentsRepo) ListCommentsByQuery(ctx context.Context, queryID string) ([]domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx, listCommentsByQuery, queryID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make([]domain.Comment, 0)
	for rows.Next() {
		var (
			c         domain.Comment
			createdAt int64
		)
		if err := rows.Scan(&c.ID, &c.QueryID, &c.Text, &c.AnonymousName, &c.CreatorID, &createdAt); err != nil {
			return nil, err
		}
		c.CreatedAt = fromMillis(createdAt)
		out = append(out, c)
	}
	return out, rows.Err()
}

const deleteCommentsByQuery = `DELETE FROM comments WHERE query_id = ?`

func (r *commentsRepo) DeleteCommentsByQuery(ctx context.Context, queryID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteCommentsByQuery, queryID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
