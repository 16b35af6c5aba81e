package domain

import "time"

// Post is an item of owned content referenced from profiles and login
// responses.
type Post struct {
	ID        string    `json:"_id"`
	AuthorID  string    `json:"author"`
	Caption   string    `json:"caption"`
	ImageURL  string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Comment belongs to a post.
type Comment struct {
	ID        string    `json:"_id"`
	PostID    string    `json:"post"`
	AuthorID  string    `json:"-"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostView is a post with its author and comments materialized, used by the
// profile read side.
type PostView struct {
	ID        string        `json:"_id"`
	Author    UserView      `json:"author"`
	Caption   string        `json:"caption"`
	ImageURL  string        `json:"image,omitempty"`
	Comments  []CommentView `json:"comments"`
	CreatedAt time.Time     `json:"createdAt"`
}

// CommentView is a comment with its author materialized.
type CommentView struct {
	ID        string    `json:"_id"`
	Author    UserView  `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
