// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Article is the denormalized representation of a blog article: the author's
// username and the referenced category are joined in by the storage layer so
// callers never need a follow-up lookup.
type Article struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`

	// AuthorID is fixed at creation; there is no way to transfer authorship.
	AuthorID       int64  `json:"author_id"`
	AuthorUsername string `json:"author_username"`

	// Category is nil when the article has no category or when its category
	// has been deleted.
	Category *Category `json:"category"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnerID returns the ID of the user allowed to modify the article.
func (a Article) OwnerID() int64 {
	return a.AuthorID
}

func (a Article) TableName() string {
	return "articles"
}

// ArticleCreate is the payload accepted when creating an article.
type ArticleCreate struct {
	Title   string `json:"title"`
	Content string `json:"content"`

	// CategoryID is optional; nil or zero means "no category".
	CategoryID *int64 `json:"category_id,omitempty"`

	// AuthorID is set by the service from the resolved identity,
	// never from the request body.
	AuthorID int64 `json:"-"`
}

// ArticleUpdate describes a partial update of an article.
// Only non-nil fields are written; omitted fields keep their values.
type ArticleUpdate struct {
	// ID is taken from the URL, not from the body.
	ID int64 `json:"-"`

	Title      *string `json:"title,omitempty"`
	Content    *string `json:"content,omitempty"`
	CategoryID *int64  `json:"category_id,omitempty"`
}
