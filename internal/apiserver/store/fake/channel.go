// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package fake

import (
	"context"

	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/errors"

	"github.com/marmotedu/newsline/internal/pkg/code"
	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

type channels struct {
	ds *datastore
}

func newChannels(ds *datastore) *channels {
	return &channels{ds: ds}
}

func (c *channels) Create(ctx context.Context, channel *v1.Channel, opts metav1.CreateOptions) error {
	c.ds.Lock()
	defer c.ds.Unlock()

	for _, x := range c.ds.channels {
		if x.Name == channel.Name {
			return errors.WithCode(code.ErrChannelAlreadyExist, "record already exist")
		}
	}

	if channel.ID == 0 {
		var max uint64
		for _, x := range c.ds.channels {
			if x.ID > max {
				max = x.ID
			}
		}
		channel.ID = max + 1
	}

	c.ds.channels = append(c.ds.channels, channel)

	return nil
}

func (c *channels) Update(ctx context.Context, channel *v1.Channel, opts metav1.UpdateOptions) error {
	c.ds.Lock()
	defer c.ds.Unlock()

	for i, x := range c.ds.channels {
		if x.Name == channel.Name {
			c.ds.channels[i] = channel

			return nil
		}
	}

	return errors.WithCode(code.ErrChannelNotFound, "record not found")
}

func (c *channels) Delete(ctx context.Context, slug string, opts metav1.DeleteOptions) error {
	c.ds.Lock()
	defer c.ds.Unlock()

	var channel *v1.Channel
	remain := c.ds.channels[:0]
	for _, x := range c.ds.channels {
		if x.Name == slug {
			channel = x

			continue
		}
		remain = append(remain, x)
	}
	if channel == nil {
		return errors.WithCode(code.ErrChannelNotFound, "record not found")
	}
	c.ds.channels = remain

	doomed := map[uint64]bool{}
	articles := c.ds.articles[:0]
	for _, a := range c.ds.articles {
		if a.ChannelID == channel.ID {
			doomed[a.ID] = true

			continue
		}
		articles = append(articles, a)
	}
	c.ds.articles = articles

	comments := c.ds.comments[:0]
	for _, x := range c.ds.comments {
		if !doomed[x.ArticleID] {
			comments = append(comments, x)
		}
	}
	c.ds.comments = comments

	reactions := c.ds.reactions[:0]
	for _, x := range c.ds.reactions {
		if !doomed[x.ArticleID] {
			reactions = append(reactions, x)
		}
	}
	c.ds.reactions = reactions

	views := c.ds.views[:0]
	for _, x := range c.ds.views {
		if !doomed[x.ArticleID] {
			views = append(views, x)
		}
	}
	c.ds.views = views

	subs := c.ds.subscriptions[:0]
	for _, s := range c.ds.subscriptions {
		if s.ChannelID != channel.ID {
			subs = append(subs, s)
		}
	}
	c.ds.subscriptions = subs

	return nil
}

func (c *channels) Get(ctx context.Context, slug string, opts metav1.GetOptions) (*v1.Channel, error) {
	c.ds.RLock()
	defer c.ds.RUnlock()

	for _, x := range c.ds.channels {
		if x.Name == slug {
			return x, nil
		}
	}

	return nil, errors.WithCode(code.ErrChannelNotFound, "record not found")
}

func (c *channels) List(ctx context.Context, opts metav1.ListOptions) (*v1.ChannelList, error) {
	c.ds.RLock()
	defer c.ds.RUnlock()

	return &v1.ChannelList{
		ListMeta: metav1.ListMeta{TotalCount: int64(len(c.ds.channels))},
		Items:    c.ds.channels,
	}, nil
}
