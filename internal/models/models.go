package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	UserID       int64     `json:"userId" db:"user_id"`
	Login        string    `json:"login" db:"login"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IsAdmin      bool      `json:"isAdmin" db:"is_admin"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Post struct {
	PostID    int64     `json:"id" db:"post_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content,omitempty" db:"content"`
	Published bool      `json:"published" db:"published"`
	Tags      []Tag     `json:"tags" db:"-"`
	Images    []Image   `json:"images,omitempty" db:"-"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type Tag struct {
	TagID int64  `json:"id" db:"tag_id"`
	Title string `json:"title" db:"title"`
}

type Image struct {
	ImageID    int64     `json:"imageId" db:"image_id"`
	PostID     int64     `json:"postId" db:"post_id"`
	ObjectName string    `json:"-" db:"object_name"`
	ImageURL   string    `json:"imageUrl" db:"image_url"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// Claims is the payload carried by access tokens. The token id (jti)
// distinguishes tokens issued to the same user in the same instant.
type Claims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// SearchQuery carries the optional filters of a multi-search request.
// A zero Keyword means "no keyword"; a zero TagID means "no tag filter".
type SearchQuery struct {
	Keyword string `json:"keyword,omitempty"`
	TagID   int64  `json:"tagId,omitempty"`
}

type SearchResult struct {
	Posts []Post `json:"posts"`
	Tags  []Tag  `json:"tags"`
}
