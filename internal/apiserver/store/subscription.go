// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package store

import (
	"context"

	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"

	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

// SubscriptionStore defines the subscription storage interface.
type SubscriptionStore interface {
	Get(ctx context.Context, channelID, userID uint64) (*v1.Subscription, error)
	Create(ctx context.Context, subscription *v1.Subscription) error
	Delete(ctx context.Context, channelID, userID uint64) error
	// ListChannels returns the channels a user subscribed to.
	ListChannels(ctx context.Context, userID uint64, opts metav1.ListOptions) (*v1.SubscriptionList, error)
	// Count returns the number of subscribers of a channel.
	Count(ctx context.Context, channelID uint64) (int64, error)
}
