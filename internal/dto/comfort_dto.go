package dto

import "time"

const (
	SortRecent  = "recent"
	SortPopular = "popular"
)

type CreateComfortPostRequest struct {
	Title       string `json:"title" validate:"required,min=5,max=100"`
	Content     string `json:"content" validate:"required,min=20,max=2000"`
	IsAnonymous bool   `json:"is_anonymous"`
}

// ListComfortQuery carries the listing parameters after defaults are
// applied, so zero values here are explicit client input and rejected.
type ListComfortQuery struct {
	Page  int    `validate:"min=1"`
	Limit int    `validate:"min=1,max=50"`
	Sort  string `validate:"oneof=recent popular"`
}

type ComfortPostItem struct {
	PostID      uint      `json:"post_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	IsAnonymous bool      `json:"is_anonymous"`
	LikeCount   int       `json:"like_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateComfortMessageRequest struct {
	Content     string `json:"content" validate:"required,min=1,max=500"`
	IsAnonymous bool   `json:"is_anonymous"`
}
