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

type channels struct {
	db *gorm.DB
}

func newChannels(ds *datastore) *channels {
	return &channels{ds.db}
}

// Create creates a new channel.
func (c *channels) Create(ctx context.Context, channel *v1.Channel, opts metav1.CreateOptions) error {
	return c.db.WithContext(ctx).Create(&channel).Error
}

// Update updates a channel.
func (c *channels) Update(ctx context.Context, channel *v1.Channel, opts metav1.UpdateOptions) error {
	return c.db.WithContext(ctx).Save(channel).Error
}

// Delete deletes the channel, its subscriptions, and every article of the
// channel together with comments, reactions and view marks, in one
// transaction.
func (c *channels) Delete(ctx context.Context, slug string, opts metav1.DeleteOptions) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		channel := &v1.Channel{}
		if err := tx.Where("name = ?", slug).First(channel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithCode(code.ErrChannelNotFound, err.Error())
			}

			return errors.WithCode(code.ErrDatabase, err.Error())
		}

		var articleIDs []uint64
		if err := tx.Model(&v1.Article{}).
			Where("channelId = ?", channel.ID).
			Pluck("id", &articleIDs).Error; err != nil {
			return errors.WithCode(code.ErrDatabase, err.Error())
		}

		if len(articleIDs) > 0 {
			if err := tx.Where("articleId in ?", articleIDs).Delete(&v1.Comment{}).Error; err != nil {
				return errors.WithCode(code.ErrDatabase, err.Error())
			}

			if err := tx.Where("articleId in ?", articleIDs).Delete(&v1.Reaction{}).Error; err != nil {
				return errors.WithCode(code.ErrDatabase, err.Error())
			}

			if err := tx.Where("articleId in ?", articleIDs).Delete(&v1.ArticleView{}).Error; err != nil {
				return errors.WithCode(code.ErrDatabase, err.Error())
			}

			if err := tx.Where("channelId = ?", channel.ID).Delete(&v1.Article{}).Error; err != nil {
				return errors.WithCode(code.ErrDatabase, err.Error())
			}
		}

		if err := tx.Where("channelId = ?", channel.ID).Delete(&v1.Subscription{}).Error; err != nil {
			return errors.WithCode(code.ErrDatabase, err.Error())
		}

		if err := tx.Delete(channel).Error; err != nil {
			return errors.WithCode(code.ErrDatabase, err.Error())
		}

		return nil
	})
}

// Get return a channel by its slug.
func (c *channels) Get(ctx context.Context, slug string, opts metav1.GetOptions) (*v1.Channel, error) {
	channel := &v1.Channel{}
	err := c.db.WithContext(ctx).Where("name = ?", slug).First(&channel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithCode(code.ErrChannelNotFound, err.Error())
		}

		return nil, errors.WithCode(code.ErrDatabase, err.Error())
	}

	return channel, nil
}

// List return all channels.
func (c *channels) List(ctx context.Context, opts metav1.ListOptions) (*v1.ChannelList, error) {
	ret := &v1.ChannelList{}
	ol := gormutil.Unpointer(opts.Offset, opts.Limit)

	d := c.db.WithContext(ctx).
		Offset(ol.Offset).
		Limit(ol.Limit).
		Order("id desc").
		Find(&ret.Items).
		Offset(-1).
		Limit(-1).
		Count(&ret.TotalCount)

	return ret, d.Error
}
