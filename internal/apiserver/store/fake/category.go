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

type categories struct {
	ds *datastore
}

func newCategories(ds *datastore) *categories {
	return &categories{ds: ds}
}

func (c *categories) Create(ctx context.Context, category *v1.Category, opts metav1.CreateOptions) error {
	c.ds.Lock()
	defer c.ds.Unlock()

	if category.ID == 0 {
		var max uint64
		for _, x := range c.ds.categories {
			if x.ID > max {
				max = x.ID
			}
		}
		category.ID = max + 1
	}

	c.ds.categories = append(c.ds.categories, category)

	return nil
}

func (c *categories) Update(ctx context.Context, category *v1.Category, opts metav1.UpdateOptions) error {
	c.ds.Lock()
	defer c.ds.Unlock()

	for i, x := range c.ds.categories {
		if x.Name == category.Name {
			c.ds.categories[i] = category

			return nil
		}
	}

	return errors.WithCode(code.ErrCategoryNotFound, "record not found")
}

func (c *categories) Delete(ctx context.Context, slug string, opts metav1.DeleteOptions) error {
	c.ds.Lock()
	defer c.ds.Unlock()

	remain := c.ds.categories[:0]
	for _, x := range c.ds.categories {
		if x.Name != slug {
			remain = append(remain, x)
		}
	}
	c.ds.categories = remain

	return nil
}

func (c *categories) Get(ctx context.Context, slug string, opts metav1.GetOptions) (*v1.Category, error) {
	c.ds.RLock()
	defer c.ds.RUnlock()

	for _, x := range c.ds.categories {
		if x.Name == slug {
			return x, nil
		}
	}

	return nil, errors.WithCode(code.ErrCategoryNotFound, "record not found")
}

func (c *categories) HasChildren(ctx context.Context, id uint64) (bool, error) {
	c.ds.RLock()
	defer c.ds.RUnlock()

	for _, x := range c.ds.categories {
		if x.ParentID != nil && *x.ParentID == id {
			return true, nil
		}
	}

	return false, nil
}

func (c *categories) List(ctx context.Context, opts metav1.ListOptions) (*v1.CategoryList, error) {
	c.ds.RLock()
	defer c.ds.RUnlock()

	return &v1.CategoryList{
		ListMeta: metav1.ListMeta{TotalCount: int64(len(c.ds.categories))},
		Items:    c.ds.categories,
	}, nil
}
