// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package v1

import (
	"context"

	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/errors"

	"github.com/marmotedu/newsline/internal/apiserver/cache"
	"github.com/marmotedu/newsline/internal/apiserver/store"
	"github.com/marmotedu/newsline/internal/pkg/code"
	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

// CategorySrv defines functions used to handle category request.
type CategorySrv interface {
	Create(ctx context.Context, category *v1.Category, opts metav1.CreateOptions) error
	Delete(ctx context.Context, slug string, opts metav1.DeleteOptions) error
	Get(ctx context.Context, slug string, opts metav1.GetOptions) (*v1.Category, error)
	Tree(ctx context.Context) ([]*v1.Category, error)
}

type categoryService struct {
	store store.Factory
}

var _ CategorySrv = (*categoryService)(nil)

func newCategories(srv *service) *categoryService {
	return &categoryService{store: srv.store}
}

// Create stores a new category. A parent, when given, must exist.
func (c *categoryService) Create(ctx context.Context, category *v1.Category, opts metav1.CreateOptions) error {
	if category.ParentID != nil {
		rows, err := c.rows(ctx)
		if err != nil {
			return err
		}
		found := false
		for _, x := range rows {
			if x.ID == *category.ParentID {
				found = true

				break
			}
		}
		if !found {
			return errors.WithCode(code.ErrCategoryNotFound, "parent category %d not found", *category.ParentID)
		}
	}

	if err := c.store.Categories().Create(ctx, category, opts); err != nil {
		return errors.WithCode(code.ErrDatabase, err.Error())
	}

	return nil
}

// Delete refuses to remove a category that still has children or articles.
func (c *categoryService) Delete(ctx context.Context, slug string, opts metav1.DeleteOptions) error {
	category, err := c.store.Categories().Get(ctx, slug, metav1.GetOptions{})
	if err != nil {
		return err
	}

	hasChildren, err := c.store.Categories().HasChildren(ctx, category.ID)
	if err != nil {
		return err
	}
	if hasChildren {
		return errors.WithCode(code.ErrCategoryNotEmpty, "category %s still has children", slug)
	}

	articles, err := c.store.Articles().List(ctx, store.ArticleFilter{CategoryID: category.ID}, metav1.ListOptions{})
	if err != nil {
		return errors.WithCode(code.ErrDatabase, err.Error())
	}
	if len(articles.Items) > 0 {
		return errors.WithCode(code.ErrCategoryNotEmpty, "category %s still has articles", slug)
	}

	return c.store.Categories().Delete(ctx, slug, opts)
}

func (c *categoryService) Get(ctx context.Context, slug string, opts metav1.GetOptions) (*v1.Category, error) {
	return c.store.Categories().Get(ctx, slug, opts)
}

// Tree returns the category forest, from the row cache when one has been
// initialized.
func (c *categoryService) Tree(ctx context.Context) ([]*v1.Category, error) {
	rows, err := c.rows(ctx)
	if err != nil {
		return nil, err
	}

	return buildCategoryForest(rows), nil
}

func (c *categoryService) rows(ctx context.Context) ([]*v1.Category, error) {
	if cacheIns, err := cache.GetCacheInsOr(nil); err == nil {
		return cacheIns.GetCategories(ctx)
	}

	list, err := c.store.Categories().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, errors.WithCode(code.ErrDatabase, err.Error())
	}

	return list.Items, nil
}
