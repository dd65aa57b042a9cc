package domain

import (
	"time"

	"github.com/google/uuid"
)

type UserID = uuid.UUID
type BlogID = uuid.UUID

// User is the root entity. ActiveToken holds the single session token
// currently recognized for this user (empty = logged out).
type User struct {
	ID          UserID    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PassHash    string    `json:"-"`
	ActiveToken string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserRef is the populated author/commenter projection (name+email only).
type UserRef struct {
	ID    UserID `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) Ref() UserRef { return UserRef{ID: u.ID, Name: u.Name, Email: u.Email} }

// BlogPost metadata. AuthorID is fixed at creation and never changes.
// Version backs optimistic concurrency on edits.
type BlogPost struct {
	ID          BlogID    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	AuthorID    UserID    `json:"author"`
	Files       []string  `json:"files"`
	PublishDate time.Time `json:"publishDate"`
	Version     int64     `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Comment lives inside exactly one post and has no client-visible id.
type Comment struct {
	Text     string    `json:"text"`
	PostedBy UserID    `json:"postedBy"`
	PostedAt time.Time `json:"postedAt"`
}

// CommentView is a Comment with the commenter expanded.
type CommentView struct {
	Text     string    `json:"text"`
	PostedBy UserRef   `json:"postedBy"`
	PostedAt time.Time `json:"postedAt"`
}

// BlogView is the API projection: author and commenters expanded,
// comments in append order.
type BlogView struct {
	ID          BlogID        `json:"id"`
	Title       string        `json:"title"`
	Content     string        `json:"content"`
	Author      UserRef       `json:"author"`
	Files       []string      `json:"files"`
	PublishDate time.Time     `json:"publishDate"`
	Comments    []CommentView `json:"comments"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
