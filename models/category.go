// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Category is a leaf entity referenced by articles. Deleting a category
// detaches it from its articles instead of deleting them.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (c Category) TableName() string {
	return "categories"
}

// CategoryCreate is the payload accepted when creating a category.
type CategoryCreate struct {
	Name string `json:"name"`
}
