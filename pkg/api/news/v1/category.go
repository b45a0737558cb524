// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package v1

import (
	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/component-base/pkg/util/idutil"
	"gorm.io/gorm"
)

// Category classifies articles. Categories form a forest: a row with a nil
// ParentID is a root. The object Name is the category slug. Children is a
// response shape only, filled by the tree builder.
type Category struct {
	// Standard object's metadata.
	metav1.ObjectMeta `json:"metadata,omitempty"`

	// Required: true
	Title string `json:"title" gorm:"column:title" valid:"required,stringlength(1|100)"`

	ParentID *uint64 `json:"parentId,omitempty" gorm:"column:parentId" valid:"-"`

	Children []*Category `json:"children,omitempty" gorm:"-" valid:"-"`
}

// CategoryList is the whole list of all categories which have been stored in storage.
type CategoryList struct {
	// Standard list metadata.
	metav1.ListMeta `json:",inline"`

	Items []*Category `json:"items"`
}

// TableName maps to mysql table name.
func (c *Category) TableName() string {
	return "category"
}

// AfterCreate run after create database record.
func (c *Category) AfterCreate(tx *gorm.DB) error {
	c.InstanceID = idutil.GetInstanceID(c.ID, "cat-")

	return tx.Save(c).Error
}
