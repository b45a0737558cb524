// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package store

import (
	"context"

	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

// ArticleViewStore defines the view mark storage interface. Marks are
// insert-only.
type ArticleViewStore interface {
	Get(ctx context.Context, articleID uint64, clientID string) (*v1.ArticleView, error)
	Create(ctx context.Context, view *v1.ArticleView) error
}
