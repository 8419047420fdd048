// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Comment is the denormalized representation of a comment: it carries the
// parent article's title and the author's username.
type Comment struct {
	ID             int64     `json:"id"`
	ArticleID      int64     `json:"article_id"`
	ArticleTitle   string    `json:"article_title"`
	AuthorID       int64     `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// OwnerID returns the ID of the user allowed to modify the comment.
func (c Comment) OwnerID() int64 {
	return c.AuthorID
}

func (c Comment) TableName() string {
	return "comments"
}

// CommentCreate is the payload accepted when creating a comment.
// The parent article is mandatory.
type CommentCreate struct {
	ArticleID int64  `json:"article_id"`
	Content   string `json:"content"`

	AuthorID int64 `json:"-"`
}

// CommentUpdate replaces the content of a comment.
type CommentUpdate struct {
	ID      int64  `json:"-"`
	Content string `json:"content"`
}
