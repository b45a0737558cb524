// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package v1

import (
	"time"

	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
)

// Subscription links a user to a channel it follows.
type Subscription struct {
	ID uint64 `json:"id,omitempty" gorm:"primary_key;AUTO_INCREMENT;column:id"`

	ChannelID uint64 `json:"channelId" gorm:"column:channelId;uniqueIndex:idx_channel_user"`

	UserID uint64 `json:"userId" gorm:"column:userId;uniqueIndex:idx_channel_user"`

	CreatedAt time.Time `json:"createdAt,omitempty" gorm:"column:createdAt"`
}

// TableName maps to mysql table name.
func (s *Subscription) TableName() string {
	return "subscription"
}

// SubscriptionList is the list of channels a user subscribed to.
type SubscriptionList struct {
	// Standard list metadata.
	metav1.ListMeta `json:",inline"`

	Items []*Channel `json:"items"`
}
