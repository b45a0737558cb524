// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package store

import (
	"context"

	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"

	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

// ArticleFilter narrows an article list query. Zero fields are ignored.
type ArticleFilter struct {
	ChannelID  uint64
	CategoryID uint64
	LocationID uint64
}

// ArticleStore defines the article storage interface.
type ArticleStore interface {
	Create(ctx context.Context, article *v1.Article, opts metav1.CreateOptions) error
	Update(ctx context.Context, article *v1.Article, opts metav1.UpdateOptions) error
	// Delete removes the article and cascades to its comments, reactions and
	// view marks in one transaction.
	Delete(ctx context.Context, slug string, opts metav1.DeleteOptions) error
	Get(ctx context.Context, slug string, opts metav1.GetOptions) (*v1.Article, error)
	List(ctx context.Context, filter ArticleFilter, opts metav1.ListOptions) (*v1.ArticleList, error)
}
