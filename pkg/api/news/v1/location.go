// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package v1

import (
	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/component-base/pkg/util/idutil"
	"gorm.io/gorm"
)

// Location geographically scopes articles. Locations form a forest with the
// same parent/child rules as categories.
type Location struct {
	// Standard object's metadata.
	metav1.ObjectMeta `json:"metadata,omitempty"`

	// Required: true
	Title string `json:"title" gorm:"column:title" valid:"required,stringlength(1|100)"`

	ParentID *uint64 `json:"parentId,omitempty" gorm:"column:parentId" valid:"-"`

	Children []*Location `json:"children,omitempty" gorm:"-" valid:"-"`
}

// LocationList is the whole list of all locations which have been stored in storage.
type LocationList struct {
	// Standard list metadata.
	metav1.ListMeta `json:",inline"`

	Items []*Location `json:"items"`
}

// TableName maps to mysql table name.
func (l *Location) TableName() string {
	return "location"
}

// AfterCreate run after create database record.
func (l *Location) AfterCreate(tx *gorm.DB) error {
	l.InstanceID = idutil.GetInstanceID(l.ID, "loc-")

	return tx.Save(l).Error
}
