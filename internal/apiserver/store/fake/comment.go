// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package fake

import (
	"context"
	"fmt"

	"github.com/jinzhu/now"
	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/errors"

	"github.com/marmotedu/newsline/internal/pkg/code"
	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

type comments struct {
	ds *datastore
}

func newComments(ds *datastore) *comments {
	return &comments{ds: ds}
}

func (c *comments) Create(ctx context.Context, comment *v1.Comment, opts metav1.CreateOptions) error {
	c.ds.Lock()
	defer c.ds.Unlock()

	if comment.ID == 0 {
		var max uint64
		for _, x := range c.ds.comments {
			if x.ID > max {
				max = x.ID
			}
		}
		comment.ID = max + 1
	}
	if comment.InstanceID == "" {
		comment.InstanceID = fmt.Sprintf("cmt-%d", comment.ID)
	}

	c.ds.comments = append(c.ds.comments, comment)

	return nil
}

func (c *comments) Update(ctx context.Context, comment *v1.Comment, opts metav1.UpdateOptions) error {
	c.ds.Lock()
	defer c.ds.Unlock()

	for i, x := range c.ds.comments {
		if x.InstanceID == comment.InstanceID {
			c.ds.comments[i] = comment

			return nil
		}
	}

	return errors.WithCode(code.ErrCommentNotFound, "record not found")
}

func (c *comments) Delete(ctx context.Context, instanceID string, opts metav1.DeleteOptions) error {
	c.ds.Lock()
	defer c.ds.Unlock()

	remain := c.ds.comments[:0]
	for _, x := range c.ds.comments {
		if x.InstanceID != instanceID {
			remain = append(remain, x)
		}
	}
	c.ds.comments = remain

	return nil
}

func (c *comments) Get(ctx context.Context, instanceID string, opts metav1.GetOptions) (*v1.Comment, error) {
	c.ds.RLock()
	defer c.ds.RUnlock()

	for _, x := range c.ds.comments {
		if x.InstanceID == instanceID {
			return x, nil
		}
	}

	return nil, errors.WithCode(code.ErrCommentNotFound, "record not found")
}

func (c *comments) ClearOrphaned(ctx context.Context, maxReserveDays int) (int64, error) {
	c.ds.Lock()
	defer c.ds.Unlock()

	cutoff := now.BeginningOfDay().AddDate(0, 0, -maxReserveDays)

	authors := map[uint64]bool{}
	for _, u := range c.ds.users {
		authors[u.ID] = true
	}

	var cleared int64
	remain := c.ds.comments[:0]
	for _, x := range c.ds.comments {
		if !authors[x.UserID] && x.CreatedAt.Before(cutoff) {
			cleared++

			continue
		}
		remain = append(remain, x)
	}
	c.ds.comments = remain

	return cleared, nil
}

func (c *comments) List(ctx context.Context, articleID uint64, opts metav1.ListOptions) (*v1.CommentList, error) {
	c.ds.RLock()
	defer c.ds.RUnlock()

	items := []*v1.Comment{}
	for i := len(c.ds.comments) - 1; i >= 0; i-- {
		if c.ds.comments[i].ArticleID == articleID {
			items = append(items, c.ds.comments[i])
		}
	}

	return &v1.CommentList{
		ListMeta: metav1.ListMeta{TotalCount: int64(len(items))},
		Items:    items,
	}, nil
}
