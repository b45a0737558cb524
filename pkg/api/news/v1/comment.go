// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package v1

import (
	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/component-base/pkg/util/idutil"
	"gorm.io/gorm"
)

// Comment represents a user comment on an article. ParentID links a reply to
// the comment it responds to.
type Comment struct {
	// Standard object's metadata.
	metav1.ObjectMeta `json:"metadata,omitempty"`

	ArticleID uint64 `json:"articleId" gorm:"column:articleId" valid:"-"`

	UserID uint64 `json:"userId" gorm:"column:userId" valid:"-"`

	ParentID *uint64 `json:"parentId,omitempty" gorm:"column:parentId" valid:"-"`

	// Required: true
	Body string `json:"body" gorm:"column:body" valid:"required,stringlength(1|4000)"`
}

// CommentList is the whole list of all comments which have been stored in storage.
type CommentList struct {
	// Standard list metadata.
	metav1.ListMeta `json:",inline"`

	Items []*Comment `json:"items"`
}

// TableName maps to mysql table name.
func (c *Comment) TableName() string {
	return "comment"
}

// AfterCreate run after create database record.
func (c *Comment) AfterCreate(tx *gorm.DB) error {
	c.InstanceID = idutil.GetInstanceID(c.ID, "cmt-")

	return tx.Save(c).Error
}
