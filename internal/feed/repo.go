package feed

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	userIDLen    = 6
	postIDLen    = 8
	commentIDLen = 10
)

func (s *Snapshot) User(id string) (*User, bool) {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i], true
		}
	}
	return nil, false
}

func (s *Snapshot) Post(id string) (*Post, bool) {
	for i := range s.Posts {
		if s.Posts[i].ID == id {
			return &s.Posts[i], true
		}
	}
	return nil, false
}

func (s *Snapshot) insertUser(u User) (*User, error) {
	id, err := s.newID(userIDLen)
	if err != nil {
		return nil, err
	}
	u.ID = id
	s.Users = append(s.Users, u)
	return &s.Users[len(s.Users)-1], nil
}

func (s *Snapshot) insertPost(p Post) (*Post, error) {
	id, err := s.newID(postIDLen)
	if err != nil {
		return nil, err
	}
	p.ID = id
	s.Posts = append(s.Posts, p)
	return &s.Posts[len(s.Posts)-1], nil
}

func (s *Snapshot) insertComment(c Comment) (*Comment, error) {
	id, err := s.newID(commentIDLen)
	if err != nil {
		return nil, err
	}
	c.ID = id
	s.Comments = append(s.Comments, c)
	return &s.Comments[len(s.Comments)-1], nil
}

// newID draws random ids until one does not collide with any existing record.
// A retry is astronomically unlikely but keeps uniqueness unconditional.
func (s *Snapshot) newID(n int) (string, error) {
	for {
		id, err := gonanoid.New(n)
		if err != nil {
			return "", err
		}
		if !s.idTaken(id) {
			return id, nil
		}
	}
}

func (s *Snapshot) idTaken(id string) bool {
	if _, ok := s.User(id); ok {
		return true
	}
	if _, ok := s.Post(id); ok {
		return true
	}
	for i := range s.Comments {
		if s.Comments[i].ID == id {
			return true
		}
	}
	return false
}

// deleteUser removes the user, every follow edge pointing at them, their
// posts (with those posts' comments), and the comments they authored.
func (s *Snapshot) deleteUser(id string) {
	users := s.Users[:0]
	for _, u := range s.Users {
		if u.ID == id {
			continue
		}
		u.Followers = remove(u.Followers, id)
		u.Following = remove(u.Following, id)
		users = append(users, u)
	}
	s.Users = users

	posts := s.Posts[:0]
	for _, p := range s.Posts {
		if p.UserID == id {
			s.deleteCommentsOfPost(p.ID)
			continue
		}
		p.Likes = remove(p.Likes, id)
		posts = append(posts, p)
	}
	s.Posts = posts

	comments := s.Comments[:0]
	for _, c := range s.Comments {
		if c.UserID != id {
			comments = append(comments, c)
		}
	}
	s.Comments = comments
}

// deletePost removes the post and cascades to its comments.
func (s *Snapshot) deletePost(id string) {
	posts := s.Posts[:0]
	for _, p := range s.Posts {
		if p.ID != id {
			posts = append(posts, p)
		}
	}
	s.Posts = posts
	s.deleteCommentsOfPost(id)
}

func (s *Snapshot) deleteCommentsOfPost(postID string) {
	comments := s.Comments[:0]
	for _, c := range s.Comments {
		if c.PostID != postID {
			comments = append(comments, c)
		}
	}
	s.Comments = comments
}

func (s *Snapshot) commentCount(postID string) int {
	n := 0
	for i := range s.Comments {
		if s.Comments[i].PostID == postID {
			n++
		}
	}
	return n
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
