package feed

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Service is the social-graph and feed-aggregation engine. Every operation
// runs a full load–check–mutate–save cycle against the Store; nothing is
// cached between calls, so reads always reflect the latest saved state.
//
// The mutex serializes whole cycles. Without it two concurrent mutations
// could each load the same snapshot and the later save would silently drop
// the earlier write.
type Service struct {
	mu    sync.Mutex
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Users, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (User, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return User{}, err
	}
	u, ok := snap.User(id)
	if !ok {
		return User{}, ErrUserNotFound
	}
	return *u, nil
}

func (s *Service) CreateUser(ctx context.Context, name, avatar, bio string) (User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return User{}, ErrNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.store.Load(ctx)
	if err != nil {
		return User{}, err
	}
	u, err := snap.insertUser(User{
		Name:      name,
		Avatar:    avatar,
		Bio:       bio,
		Followers: []string{},
		Following: []string{},
	})
	if err != nil {
		return User{}, err
	}
	if err := s.store.Save(ctx, snap); err != nil {
		return User{}, err
	}
	return *u, nil
}

// DeleteUser removes the user and cascades: follow edges on every other
// user, the user's posts (with their comments), their likes, and the
// comments they authored elsewhere.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if _, ok := snap.User(id); !ok {
		return ErrUserNotFound
	}
	snap.deleteUser(id)
	return s.store.Save(ctx, snap)
}

// ToggleFollow flips the follow edge from follower to target. The edge is
// stored on both endpoints and both sides are updated together, so the
// symmetry invariant holds after every call. Toggling twice restores the
// original state.
func (s *Service) ToggleFollow(ctx context.Context, targetID, followerID string) (target, follower User, err error) {
	if targetID == followerID {
		return User{}, User{}, ErrSelfFollow
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.store.Load(ctx)
	if err != nil {
		return User{}, User{}, err
	}
	t, ok := snap.User(targetID)
	if !ok {
		return User{}, User{}, ErrUserNotFound
	}
	f, ok := snap.User(followerID)
	if !ok {
		return User{}, User{}, ErrUserNotFound
	}

	if contains(t.Followers, followerID) {
		t.Followers = remove(t.Followers, followerID)
		f.Following = remove(f.Following, targetID)
	} else {
		t.Followers = append(t.Followers, followerID)
		f.Following = append(f.Following, targetID)
	}

	if err := s.store.Save(ctx, snap); err != nil {
		return User{}, User{}, err
	}
	return *t, *f, nil
}

// ListPosts returns enriched views of all posts, or only those authored by
// userID when it is non-empty, ordered by the named strategy. Author
// profiles are joined at read time so profile edits show up immediately.
func (s *Service) ListPosts(ctx context.Context, userID, strategy string) ([]PostView, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	views := []PostView{}
	for _, p := range snap.Posts {
		if userID != "" && p.UserID != userID {
			continue
		}
		author, _ := snap.User(p.UserID)
		views = append(views, PostView{
			Post:         p,
			User:         author,
			CommentCount: snap.commentCount(p.ID),
		})
	}
	return sortViews(views, StrategyByName(strategy)), nil
}

func (s *Service) GetPost(ctx context.Context, id string) (Post, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return Post{}, err
	}
	p, ok := snap.Post(id)
	if !ok {
		return Post{}, ErrPostNotFound
	}
	return *p, nil
}

func (s *Service) CreatePost(ctx context.Context, userID, content, image string) (Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Post{}, ErrContentRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.store.Load(ctx)
	if err != nil {
		return Post{}, err
	}
	if _, ok := snap.User(userID); !ok {
		return Post{}, ErrUserNotFound
	}
	p, err := snap.insertPost(Post{
		UserID:    userID,
		Content:   content,
		Image:     image,
		CreatedAt: time.Now().UTC(),
		Likes:     []string{},
	})
	if err != nil {
		return Post{}, err
	}
	if err := s.store.Save(ctx, snap); err != nil {
		return Post{}, err
	}
	return *p, nil
}

// DeletePost removes the post and every comment attached to it.
func (s *Service) DeletePost(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if _, ok := snap.Post(id); !ok {
		return ErrPostNotFound
	}
	snap.deletePost(id)
	return s.store.Save(ctx, snap)
}

// ToggleLike flips userID's like on the post. Likes are unidirectional, so
// only the post's like set changes.
func (s *Service) ToggleLike(ctx context.Context, postID, userID string) (Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.store.Load(ctx)
	if err != nil {
		return Post{}, err
	}
	p, ok := snap.Post(postID)
	if !ok {
		return Post{}, ErrPostNotFound
	}
	if _, ok := snap.User(userID); !ok {
		return Post{}, ErrUserNotFound
	}

	if contains(p.Likes, userID) {
		p.Likes = remove(p.Likes, userID)
	} else {
		p.Likes = append(p.Likes, userID)
	}

	if err := s.store.Save(ctx, snap); err != nil {
		return Post{}, err
	}
	return *p, nil
}

// ListComments returns the post's comments enriched with their authors'
// profiles, oldest first.
func (s *Service) ListComments(ctx context.Context, postID string) ([]CommentView, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := snap.Post(postID); !ok {
		return nil, ErrPostNotFound
	}

	views := []CommentView{}
	for _, c := range snap.Comments {
		if c.PostID != postID {
			continue
		}
		author, _ := snap.User(c.UserID)
		views = append(views, CommentView{Comment: c, User: author})
	}
	sortCommentsAsc(views)
	return views, nil
}

func (s *Service) CreateComment(ctx context.Context, postID, userID, text string) (Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Comment{}, ErrTextRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.store.Load(ctx)
	if err != nil {
		return Comment{}, err
	}
	if _, ok := snap.Post(postID); !ok {
		return Comment{}, ErrPostNotFound
	}
	if _, ok := snap.User(userID); !ok {
		return Comment{}, ErrUserNotFound
	}
	c, err := snap.insertComment(Comment{
		PostID:    postID,
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return Comment{}, err
	}
	if err := s.store.Save(ctx, snap); err != nil {
		return Comment{}, err
	}
	return *c, nil
}
