// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package v1

import "time"

// ArticleView marks that a viewing identity has been counted for an article.
// Rows are insert-only: created once, never updated or deleted.
type ArticleView struct {
	ID uint64 `json:"id,omitempty" gorm:"primary_key;AUTO_INCREMENT;column:id"`

	ArticleID uint64 `json:"articleId" gorm:"column:articleId;uniqueIndex:idx_article_client"`

	// ClientID is `user-<id>` for authenticated viewers or `ip-<addr>` for
	// anonymous ones.
	ClientID string `json:"clientId" gorm:"column:clientId;uniqueIndex:idx_article_client"`

	CreatedAt time.Time `json:"createdAt,omitempty" gorm:"column:createdAt"`
}

// TableName maps to mysql table name.
func (v *ArticleView) TableName() string {
	return "article_view"
}

// ViewResult is the outcome of recording a view.
type ViewResult struct {
	// Counted is false when the identity had already been counted.
	Counted bool `json:"counted"`

	ViewCount int64 `json:"viewCount"`
}
