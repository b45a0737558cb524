// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package fake

import (
	"context"

	"gorm.io/gorm"

	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

type articleViews struct {
	ds *datastore
}

func newArticleViews(ds *datastore) *articleViews {
	return &articleViews{ds: ds}
}

func (a *articleViews) Get(ctx context.Context, articleID uint64, clientID string) (*v1.ArticleView, error) {
	a.ds.RLock()
	defer a.ds.RUnlock()

	for _, x := range a.ds.views {
		if x.ArticleID == articleID && x.ClientID == clientID {
			return x, nil
		}
	}

	return nil, gorm.ErrRecordNotFound
}

func (a *articleViews) Create(ctx context.Context, view *v1.ArticleView) error {
	a.ds.Lock()
	defer a.ds.Unlock()

	if view.ID == 0 {
		var max uint64
		for _, x := range a.ds.views {
			if x.ID > max {
				max = x.ID
			}
		}
		view.ID = max + 1
	}

	a.ds.views = append(a.ds.views, view)

	return nil
}
