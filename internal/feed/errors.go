package feed

import "errors"

const (
	// ErrUserNotFound is returned when a referenced user does not exist.
	ErrUserNotFound notFoundError = "feed: user not found"
	// ErrPostNotFound is returned when a referenced post does not exist.
	ErrPostNotFound notFoundError = "feed: post not found"

	// ErrNameRequired is returned when a user is created without a name.
	ErrNameRequired invalidError = "feed: name is required"
	// ErrContentRequired is returned when a post is created with empty content.
	ErrContentRequired invalidError = "feed: content is required"
	// ErrTextRequired is returned when a comment is created with empty text.
	ErrTextRequired invalidError = "feed: text is required"
	// ErrSelfFollow is returned when a user attempts to follow themselves.
	ErrSelfFollow invalidError = "feed: a user cannot follow themselves"
)

type notFoundError string

func (e notFoundError) Error() string { return string(e) }

type invalidError string

func (e invalidError) Error() string { return string(e) }

// IsNotFound reports whether err means a referenced entity does not exist.
func IsNotFound(err error) bool {
	var nf notFoundError
	return errors.As(err, &nf)
}

// IsInvalid reports whether err means the request itself was malformed.
func IsInvalid(err error) bool {
	var inv invalidError
	return errors.As(err, &inv)
}
