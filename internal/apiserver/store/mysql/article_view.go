// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package mysql

import (
	"context"

	"github.com/marmotedu/errors"
	"gorm.io/gorm"

	"github.com/marmotedu/newsline/internal/pkg/code"
	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

type articleViews struct {
	db *gorm.DB
}

func newArticleViews(ds *datastore) *articleViews {
	return &articleViews{ds.db}
}

// Get return the view mark of a client on an article. gorm.ErrRecordNotFound
// is passed through so callers can branch on absence.
func (a *articleViews) Get(ctx context.Context, articleID uint64, clientID string) (*v1.ArticleView, error) {
	view := &v1.ArticleView{}
	err := a.db.WithContext(ctx).
		Where("articleId = ? and clientId = ?", articleID, clientID).
		First(&view).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		return nil, errors.WithCode(code.ErrDatabase, err.Error())
	}

	return view, nil
}

// Create inserts a view mark.
func (a *articleViews) Create(ctx context.Context, view *v1.ArticleView) error {
	return a.db.WithContext(ctx).Create(&view).Error
}
