// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package v1

import (
	"context"
	"regexp"

	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/errors"
	"gorm.io/gorm"

	"github.com/marmotedu/newsline/internal/apiserver/store"
	"github.com/marmotedu/newsline/internal/pkg/code"
	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
	"github.com/marmotedu/newsline/pkg/log"
)

// ChannelSrv defines functions used to handle channel request.
type ChannelSrv interface {
	Create(ctx context.Context, channel *v1.Channel, opts metav1.CreateOptions) error
	Update(ctx context.Context, channel *v1.Channel, opts metav1.UpdateOptions) error
	Delete(ctx context.Context, slug string, opts metav1.DeleteOptions) error
	Get(ctx context.Context, slug string, opts metav1.GetOptions) (*v1.Channel, error)
	List(ctx context.Context, opts metav1.ListOptions) (*v1.ChannelList, error)
	Subscribe(ctx context.Context, slug string, userID uint64) error
	Unsubscribe(ctx context.Context, slug string, userID uint64) error
	Subscriptions(ctx context.Context, userID uint64, opts metav1.ListOptions) (*v1.SubscriptionList, error)
}

type channelService struct {
	store store.Factory
}

var _ ChannelSrv = (*channelService)(nil)

func newChannels(srv *service) *channelService {
	return &channelService{store: srv.store}
}

func (c *channelService) Create(ctx context.Context, channel *v1.Channel, opts metav1.CreateOptions) error {
	if err := c.store.Channels().Create(ctx, channel, opts); err != nil {
		if errors.IsCode(err, code.ErrChannelAlreadyExist) {
			return err
		}
		if match, _ := regexp.MatchString("Duplicate entry '.*' for key", err.Error()); match {
			return errors.WithCode(code.ErrChannelAlreadyExist, err.Error())
		}

		return errors.WithCode(code.ErrDatabase, err.Error())
	}

	return nil
}

func (c *channelService) Update(ctx context.Context, channel *v1.Channel, opts metav1.UpdateOptions) error {
	if err := c.store.Channels().Update(ctx, channel, opts); err != nil {
		return errors.WithCode(code.ErrDatabase, err.Error())
	}

	return nil
}

func (c *channelService) Delete(ctx context.Context, slug string, opts metav1.DeleteOptions) error {
	return c.store.Channels().Delete(ctx, slug, opts)
}

func (c *channelService) Get(ctx context.Context, slug string, opts metav1.GetOptions) (*v1.Channel, error) {
	return c.store.Channels().Get(ctx, slug, opts)
}

func (c *channelService) List(ctx context.Context, opts metav1.ListOptions) (*v1.ChannelList, error) {
	channels, err := c.store.Channels().List(ctx, opts)
	if err != nil {
		log.L(ctx).Errorf("list channels from storage failed: %s", err.Error())

		return nil, errors.WithCode(code.ErrDatabase, err.Error())
	}

	return channels, nil
}

// Subscribe adds the user to the channel's audience. The denormalized
// subscriber count is bumped opportunistically; the watcher reconciles it.
func (c *channelService) Subscribe(ctx context.Context, slug string, userID uint64) error {
	channel, err := c.store.Channels().Get(ctx, slug, metav1.GetOptions{})
	if err != nil {
		return err
	}

	if _, err := c.store.Subscriptions().Get(ctx, channel.ID, userID); err == nil {
		return errors.WithCode(code.ErrAlreadySubscribed, "user %d already subscribed to %s", userID, slug)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := c.store.Subscriptions().Create(ctx, &v1.Subscription{
		ChannelID: channel.ID,
		UserID:    userID,
	}); err != nil {
		return errors.WithCode(code.ErrDatabase, err.Error())
	}

	channel.SubscriberCount++
	if err := c.store.Channels().Update(ctx, channel, metav1.UpdateOptions{}); err != nil {
		log.L(ctx).Warnf("subscriber count bump failed for channel %s: %s", slug, err.Error())
	}

	return nil
}

// Unsubscribe removes the user from the channel's audience.
func (c *channelService) Unsubscribe(ctx context.Context, slug string, userID uint64) error {
	channel, err := c.store.Channels().Get(ctx, slug, metav1.GetOptions{})
	if err != nil {
		return err
	}

	if _, err := c.store.Subscriptions().Get(ctx, channel.ID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.WithCode(code.ErrNotSubscribed, "user %d not subscribed to %s", userID, slug)
		}

		return err
	}

	if err := c.store.Subscriptions().Delete(ctx, channel.ID, userID); err != nil {
		return errors.WithCode(code.ErrDatabase, err.Error())
	}

	if channel.SubscriberCount > 0 {
		channel.SubscriberCount--
	}
	if err := c.store.Channels().Update(ctx, channel, metav1.UpdateOptions{}); err != nil {
		log.L(ctx).Warnf("subscriber count decrement failed for channel %s: %s", slug, err.Error())
	}

	return nil
}

func (c *channelService) Subscriptions(
	ctx context.Context,
	userID uint64,
	opts metav1.ListOptions,
) (*v1.SubscriptionList, error) {
	return c.store.Subscriptions().ListChannels(ctx, userID, opts)
}
