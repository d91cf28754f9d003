package store

import (
	"time"

	"minifeed/internal/feed"
)

// Seed builds the starter snapshot used when no prior snapshot exists: two
// users with a mutual follow edge, a post by each liked by the other, and a
// comment on each post. All records share one timestamp.
func Seed() *feed.Snapshot {
	now := time.Now().UTC()
	return &feed.Snapshot{
		Users: []feed.User{
			{
				ID:        "u1",
				Name:      "Alex",
				Avatar:    "https://i.pravatar.cc/150?img=5",
				Bio:       "Frontend tinkerer",
				Followers: []string{"u2"},
				Following: []string{"u2"},
			},
			{
				ID:        "u2",
				Name:      "Jamie",
				Avatar:    "https://i.pravatar.cc/150?img=3",
				Bio:       "Back-end enthusiast",
				Followers: []string{"u1"},
				Following: []string{"u1"},
			},
		},
		Posts: []feed.Post{
			{
				ID:        "p1",
				UserID:    "u1",
				Content:   "Excited to ship this mini social app!",
				CreatedAt: now,
				Likes:     []string{"u2"},
			},
			{
				ID:        "p2",
				UserID:    "u2",
				Content:   "API layer ready. Time for UI polish.",
				CreatedAt: now,
				Likes:     []string{"u1"},
			},
		},
		Comments: []feed.Comment{
			{ID: "c1", PostID: "p1", UserID: "u2", Text: "Looks great!", CreatedAt: now},
			{ID: "c2", PostID: "p2", UserID: "u1", Text: "Let's gooo 🚀", CreatedAt: now},
		},
	}
}
