// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package v1

import (
	"time"

	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/component-base/pkg/util/idutil"
	"gorm.io/gorm"
)

// Article publication status.
const (
	ArticleStatusDraft = iota
	ArticleStatusPublished
)

// Reaction states reported back to the caller.
const (
	ReactionNone    = ""
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

// Article represents an article restful resource. The object Name is the
// article slug and is unique across the platform. It is also used as gorm model.
type Article struct {
	// Standard object's metadata.
	metav1.ObjectMeta `json:"metadata,omitempty"`

	ChannelID uint64 `json:"channelId" gorm:"column:channelId" valid:"-"`

	AuthorID uint64 `json:"authorId" gorm:"column:authorId" valid:"-"`

	// Required: true
	Title string `json:"title" gorm:"column:title" valid:"required,stringlength(1|200)"`

	Summary string `json:"summary" gorm:"column:summary" valid:"-"`

	// Required: true
	Body string `json:"body" gorm:"column:body" valid:"required"`

	ImageURL string `json:"imageUrl" gorm:"column:imageUrl" valid:"-"`

	CategoryID *uint64 `json:"categoryId,omitempty" gorm:"column:categoryId" valid:"-"`

	LocationID *uint64 `json:"locationId,omitempty" gorm:"column:locationId" valid:"-"`

	Status int `json:"status" gorm:"column:status" valid:"-"`

	PublishedAt *time.Time `json:"publishedAt,omitempty" gorm:"column:publishedAt"`

	// ViewCount is server authoritative and monotonically non-decreasing.
	// Administrators may raise it out-of-band.
	ViewCount int64 `json:"viewCount" gorm:"column:viewCount" valid:"-"`

	// Admin override floors, added to real reaction counts for display.
	AdminLikeCount    int64 `json:"-" gorm:"column:adminLikeCount" valid:"-"`
	AdminDislikeCount int64 `json:"-" gorm:"column:adminDislikeCount" valid:"-"`

	// Displayed aggregates, computed per request. Never stored.
	LikeCount    int64  `json:"likeCount" gorm:"-" valid:"-"`
	DislikeCount int64  `json:"dislikeCount" gorm:"-" valid:"-"`
	UserReaction string `json:"userReaction,omitempty" gorm:"-" valid:"-"`
}

// ArticleList is the whole list of all articles which have been stored in storage.
type ArticleList struct {
	// Standard list metadata.
	metav1.ListMeta `json:",inline"`

	Items []*Article `json:"items"`
}

// TableName maps to mysql table name.
func (a *Article) TableName() string {
	return "article"
}

// AfterCreate run after create database record.
func (a *Article) AfterCreate(tx *gorm.DB) error {
	a.InstanceID = idutil.GetInstanceID(a.ID, "arti-")

	return tx.Save(a).Error
}
