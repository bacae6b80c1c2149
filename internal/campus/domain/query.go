package domain

import "time"

type Query struct {
	ID            string
	Section       string
	Title         string
	Description   string
	AnonymousName string
	CreatorID     string
	CreatedAt     time.Time
}

// QuerySummary is a query as it appears in listings.
type QuerySummary struct {
	Query
	CommentCount int
}

// QueryDetail is a single query with its comments in ascending time order.
type QueryDetail struct {
	Query    Query
	Comments []Comment
	IsOwner  bool
}

// DefaultSections is the catalogue offered to clients. Sections are free
// text on write so this list is advisory.
var DefaultSections = []string{
	"DSA",
	"DBMS",
	"OS",
	"CN",
	"Math",
	"Web Development",
	"Machine Learning",
	"Cloud Computing",
	"Other",
}
