// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package v1 defines the newsline platform restful resources. The structs
// double as gorm models.
package v1

import (
	"fmt"
	"time"

	"github.com/marmotedu/component-base/pkg/auth"
	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/component-base/pkg/util/idutil"
	"gorm.io/gorm"
)

// User represents a user restful resource. It is also used as gorm model.
type User struct {
	// Standard object's metadata.
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Status int `json:"status" gorm:"column:status" valid:"-"`

	// Required: true
	Nickname string `json:"nickname" gorm:"column:nickname" valid:"required,stringlength(1|30)"`

	// Required: true
	Password string `json:"password,omitempty" gorm:"column:password" valid:"required,stringlength(5|128)"`

	// Required: true
	Email string `json:"email" gorm:"column:email" valid:"required,email"`

	IsAdmin int `json:"isAdmin,omitempty" gorm:"column:isAdmin" valid:"-"`

	LoginedAt time.Time `json:"loginedAt,omitempty" gorm:"column:loginedAt"`
}

// UserList is the whole list of all users which have been stored in storage.
type UserList struct {
	// Standard list metadata.
	metav1.ListMeta `json:",inline"`

	Items []*User `json:"items"`
}

// TableName maps to mysql table name.
func (u *User) TableName() string {
	return "user"
}

// Compare with the plain text password. Returns an error if it is not the same
// as the encrypted one.
func (u *User) Compare(pwd string) error {
	if err := auth.Compare(u.Password, pwd); err != nil {
		return fmt.Errorf("failed to compare password: %w", err)
	}

	return nil
}

// AfterCreate run after create database record.
func (u *User) AfterCreate(tx *gorm.DB) error {
	u.InstanceID = idutil.GetInstanceID(u.ID, "user-")

	return tx.Save(u).Error
}
