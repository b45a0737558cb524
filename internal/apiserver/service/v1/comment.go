// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package v1

import (
	"context"

	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/errors"

	"github.com/marmotedu/newsline/internal/apiserver/store"
	"github.com/marmotedu/newsline/internal/pkg/code"
	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

// CommentSrv defines functions used to handle comment request.
type CommentSrv interface {
	Create(ctx context.Context, articleSlug string, comment *v1.Comment, opts metav1.CreateOptions) error
	Update(ctx context.Context, comment *v1.Comment, opts metav1.UpdateOptions) error
	Delete(ctx context.Context, instanceID string, opts metav1.DeleteOptions) error
	Get(ctx context.Context, instanceID string, opts metav1.GetOptions) (*v1.Comment, error)
	List(ctx context.Context, articleSlug string, opts metav1.ListOptions) (*v1.CommentList, error)
}

type commentService struct {
	store store.Factory
}

var _ CommentSrv = (*commentService)(nil)

func newComments(srv *service) *commentService {
	return &commentService{store: srv.store}
}

// Create resolves the article and stores the comment under it. A reply must
// reference a parent on the same article.
func (c *commentService) Create(
	ctx context.Context,
	articleSlug string,
	comment *v1.Comment,
	opts metav1.CreateOptions,
) error {
	article, err := c.store.Articles().Get(ctx, articleSlug, metav1.GetOptions{})
	if err != nil {
		return err
	}

	comment.ArticleID = article.ID

	if comment.ParentID != nil {
		siblings, err := c.store.Comments().List(ctx, article.ID, metav1.ListOptions{})
		if err != nil {
			return errors.WithCode(code.ErrDatabase, err.Error())
		}
		found := false
		for _, x := range siblings.Items {
			if x.ID == *comment.ParentID {
				found = true

				break
			}
		}
		if !found {
			return errors.WithCode(code.ErrCommentNotFound, "parent comment %d is not on article %s", *comment.ParentID, articleSlug)
		}
	}

	if err := c.store.Comments().Create(ctx, comment, opts); err != nil {
		return errors.WithCode(code.ErrDatabase, err.Error())
	}

	return nil
}

func (c *commentService) Update(ctx context.Context, comment *v1.Comment, opts metav1.UpdateOptions) error {
	if err := c.store.Comments().Update(ctx, comment, opts); err != nil {
		return errors.WithCode(code.ErrDatabase, err.Error())
	}

	return nil
}

func (c *commentService) Delete(ctx context.Context, instanceID string, opts metav1.DeleteOptions) error {
	return c.store.Comments().Delete(ctx, instanceID, opts)
}

func (c *commentService) Get(ctx context.Context, instanceID string, opts metav1.GetOptions) (*v1.Comment, error) {
	return c.store.Comments().Get(ctx, instanceID, opts)
}

func (c *commentService) List(
	ctx context.Context,
	articleSlug string,
	opts metav1.ListOptions,
) (*v1.CommentList, error) {
	article, err := c.store.Articles().Get(ctx, articleSlug, metav1.GetOptions{})
	if err != nil {
		return nil, err
	}

	return c.store.Comments().List(ctx, article.ID, opts)
}
