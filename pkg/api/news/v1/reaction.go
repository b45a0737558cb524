// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package v1

import "time"

// AdminUserID is the sentinel user id used by synthetic aggregate reaction
// rows. Rows owned by it represent an override, not an identity, and are
// excluded from per-user toggling and from real counts.
const AdminUserID = 0

// Reaction is a like or dislike of a user on an article. At most one row may
// exist per (article, real user) pair.
type Reaction struct {
	ID uint64 `json:"id,omitempty" gorm:"primary_key;AUTO_INCREMENT;column:id"`

	ArticleID uint64 `json:"articleId" gorm:"column:articleId;uniqueIndex:idx_article_user"`

	UserID uint64 `json:"userId" gorm:"column:userId;uniqueIndex:idx_article_user"`

	IsLike bool `json:"isLike" gorm:"column:isLike"`

	CreatedAt time.Time `json:"createdAt,omitempty" gorm:"column:createdAt"`

	UpdatedAt time.Time `json:"updatedAt,omitempty" gorm:"column:updatedAt"`
}

// TableName maps to mysql table name.
func (r *Reaction) TableName() string {
	return "reaction"
}

// ReactionSummary reports the displayed counts of an article together with the
// caller's own reaction state.
type ReactionSummary struct {
	LikeCount    int64  `json:"likeCount"`
	DislikeCount int64  `json:"dislikeCount"`
	UserReaction string `json:"userReaction"`
}
