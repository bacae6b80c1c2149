package http

import (
	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/pkg/campussdk"
)

// Views never carry creator ids.

func toQuerySummary(q domain.QuerySummary) campussdk.QuerySummary {
	return campussdk.QuerySummary{
		QueryID:       q.ID,
		Section:       q.Section,
		Title:         q.Title,
		Description:   q.Description,
		AnonymousName: q.AnonymousName,
		CreatedAt:     q.CreatedAt,
		CommentCount:  q.CommentCount,
	}
}

func toQueryView(q domain.Query, isOwner bool) campussdk.QueryView {
	return campussdk.QueryView{
		QueryID:       q.ID,
		Section:       q.Section,
		Title:         q.Title,
		Description:   q.Description,
		AnonymousName: q.AnonymousName,
		CreatedAt:     q.CreatedAt,
		IsOwner:       isOwner,
	}
}

func toCommentView(c domain.Comment) campussdk.CommentView {
	return campussdk.CommentView{
		CommentID:     c.ID,
		QueryID:       c.QueryID,
		CommentText:   c.Text,
		AnonymousName: c.AnonymousName,
		CreatedAt:     c.CreatedAt,
	}
}
