// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package fake

import (
	"context"

	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"gorm.io/gorm"

	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

type subscriptions struct {
	ds *datastore
}

func newSubscriptions(ds *datastore) *subscriptions {
	return &subscriptions{ds: ds}
}

func (s *subscriptions) Get(ctx context.Context, channelID, userID uint64) (*v1.Subscription, error) {
	s.ds.RLock()
	defer s.ds.RUnlock()

	for _, x := range s.ds.subscriptions {
		if x.ChannelID == channelID && x.UserID == userID {
			return x, nil
		}
	}

	return nil, gorm.ErrRecordNotFound
}

func (s *subscriptions) Create(ctx context.Context, subscription *v1.Subscription) error {
	s.ds.Lock()
	defer s.ds.Unlock()

	if subscription.ID == 0 {
		var max uint64
		for _, x := range s.ds.subscriptions {
			if x.ID > max {
				max = x.ID
			}
		}
		subscription.ID = max + 1
	}

	s.ds.subscriptions = append(s.ds.subscriptions, subscription)

	return nil
}

func (s *subscriptions) Delete(ctx context.Context, channelID, userID uint64) error {
	s.ds.Lock()
	defer s.ds.Unlock()

	remain := s.ds.subscriptions[:0]
	for _, x := range s.ds.subscriptions {
		if x.ChannelID == channelID && x.UserID == userID {
			continue
		}
		remain = append(remain, x)
	}
	s.ds.subscriptions = remain

	return nil
}

func (s *subscriptions) ListChannels(
	ctx context.Context,
	userID uint64,
	opts metav1.ListOptions,
) (*v1.SubscriptionList, error) {
	s.ds.RLock()
	defer s.ds.RUnlock()

	byID := map[uint64]*v1.Channel{}
	for _, c := range s.ds.channels {
		byID[c.ID] = c
	}

	items := []*v1.Channel{}
	for i := len(s.ds.subscriptions) - 1; i >= 0; i-- {
		x := s.ds.subscriptions[i]
		if x.UserID != userID {
			continue
		}
		if c, ok := byID[x.ChannelID]; ok {
			items = append(items, c)
		}
	}

	return &v1.SubscriptionList{
		ListMeta: metav1.ListMeta{TotalCount: int64(len(items))},
		Items:    items,
	}, nil
}

func (s *subscriptions) Count(ctx context.Context, channelID uint64) (int64, error) {
	s.ds.RLock()
	defer s.ds.RUnlock()

	var count int64
	for _, x := range s.ds.subscriptions {
		if x.ChannelID == channelID {
			count++
		}
	}

	return count, nil
}
