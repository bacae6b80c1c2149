package domain

import "time"

type Comment struct {
	ID            string
	QueryID       string
	Text          string
	AnonymousName string
	CreatorID     string
	CreatedAt     time.Time
}
