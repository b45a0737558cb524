// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package mysql

import (
	"context"

	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/errors"
	"gorm.io/gorm"

	"github.com/marmotedu/newsline/internal/pkg/code"
	"github.com/marmotedu/newsline/internal/pkg/util/gormutil"
	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

type subscriptions struct {
	db *gorm.DB
}

func newSubscriptions(ds *datastore) *subscriptions {
	return &subscriptions{ds.db}
}

// Get return the subscription of a user on a channel. gorm.ErrRecordNotFound
// is passed through so callers can branch on absence.
func (s *subscriptions) Get(ctx context.Context, channelID, userID uint64) (*v1.Subscription, error) {
	subscription := &v1.Subscription{}
	err := s.db.WithContext(ctx).
		Where("channelId = ? and userId = ?", channelID, userID).
		First(&subscription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		return nil, errors.WithCode(code.ErrDatabase, err.Error())
	}

	return subscription, nil
}

// Create inserts a subscription row.
func (s *subscriptions) Create(ctx context.Context, subscription *v1.Subscription) error {
	return s.db.WithContext(ctx).Create(&subscription).Error
}

// Delete removes the subscription of a user on a channel.
func (s *subscriptions) Delete(ctx context.Context, channelID, userID uint64) error {
	err := s.db.WithContext(ctx).
		Where("channelId = ? and userId = ?", channelID, userID).
		Delete(&v1.Subscription{}).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.WithCode(code.ErrDatabase, err.Error())
	}

	return nil
}

// ListChannels return the channels a user subscribed to, newest subscription
// first.
func (s *subscriptions) ListChannels(
	ctx context.Context,
	userID uint64,
	opts metav1.ListOptions,
) (*v1.SubscriptionList, error) {
	ret := &v1.SubscriptionList{}
	ol := gormutil.Unpointer(opts.Offset, opts.Limit)

	d := s.db.WithContext(ctx).Model(&v1.Channel{}).
		Joins("join subscription on subscription.channelId = channel.id").
		Where("subscription.userId = ?", userID).
		Offset(ol.Offset).
		Limit(ol.Limit).
		Order("subscription.id desc").
		Find(&ret.Items).
		Offset(-1).
		Limit(-1).
		Count(&ret.TotalCount)

	return ret, d.Error
}

// Count returns the number of subscribers of a channel.
func (s *subscriptions) Count(ctx context.Context, channelID uint64) (int64, error) {
	var count int64
	d := s.db.WithContext(ctx).Model(&v1.Subscription{}).
		Where("channelId = ?", channelID).
		Count(&count)
	if d.Error != nil {
		return 0, errors.WithCode(code.ErrDatabase, d.Error.Error())
	}

	return count, nil
}
