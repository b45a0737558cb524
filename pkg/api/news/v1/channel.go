// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package v1

import (
	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/component-base/pkg/util/idutil"
	"gorm.io/gorm"
)

// Channel represents a publisher's named content stream. The object Name is
// the channel slug and is unique across the platform.
type Channel struct {
	// Standard object's metadata.
	metav1.ObjectMeta `json:"metadata,omitempty"`

	// Required: true
	Title string `json:"title" gorm:"column:title" valid:"required,stringlength(1|100)"`

	Description string `json:"description" gorm:"column:description" valid:"-"`

	ImageURL string `json:"imageUrl" gorm:"column:imageUrl" valid:"-"`

	// OwnerID is the internal id of the user owning this channel.
	OwnerID uint64 `json:"ownerId" gorm:"column:ownerId" valid:"-"`

	// SubscriberCount is denormalized from the subscription table and
	// reconciled by the counter watcher.
	SubscriberCount int64 `json:"subscriberCount" gorm:"column:subscriberCount" valid:"-"`
}

// ChannelList is the whole list of all channels which have been stored in storage.
type ChannelList struct {
	// Standard list metadata.
	metav1.ListMeta `json:",inline"`

	Items []*Channel `json:"items"`
}

// TableName maps to mysql table name.
func (c *Channel) TableName() string {
	return "channel"
}

// AfterCreate run after create database record.
func (c *Channel) AfterCreate(tx *gorm.DB) error {
	c.InstanceID = idutil.GetInstanceID(c.ID, "chan-")

	return tx.Save(c).Error
}
