package feed

import (
	"context"
	"time"
)

type User struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Avatar    string   `json:"avatar"`
	Bio       string   `json:"bio"`
	Followers []string `json:"followers"`
	Following []string `json:"following"`
}

type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	Likes     []string  `json:"likes"`
}

type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Snapshot is the complete dataset at a point in time. Each collection
// preserves insertion order; relationships between the three are expressed
// only through identifier references, never embedding.
type Snapshot struct {
	Users    []User    `json:"users"`
	Posts    []Post    `json:"posts"`
	Comments []Comment `json:"comments"`
}

// PostView is a Post enriched at read time with its author's current
// profile and the number of comments referencing it.
type PostView struct {
	Post
	User         *User `json:"user"`
	CommentCount int   `json:"commentCount"`
}

// CommentView is a Comment enriched with the commenting user's profile.
type CommentView struct {
	Comment
	User *User `json:"user"`
}

// Store loads and persists whole snapshots. Load seeds and persists starter
// data when no snapshot exists yet; Save replaces the stored snapshot
// atomically as observed by subsequent loads.
type Store interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
}
