// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package mysql

import (
	"context"

	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/errors"
	"gorm.io/gorm"

	"github.com/marmotedu/newsline/internal/apiserver/store"
	"github.com/marmotedu/newsline/internal/pkg/code"
	"github.com/marmotedu/newsline/internal/pkg/util/gormutil"
	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

type articles struct {
	db *gorm.DB
}

func newArticles(ds *datastore) *articles {
	return &articles{ds.db}
}

// Create creates a new article.
func (a *articles) Create(ctx context.Context, article *v1.Article, opts metav1.CreateOptions) error {
	return a.db.WithContext(ctx).Create(&article).Error
}

// Update updates an article.
func (a *articles) Update(ctx context.Context, article *v1.Article, opts metav1.UpdateOptions) error {
	return a.db.WithContext(ctx).Save(article).Error
}

// Delete deletes the article and its comments, reactions and view marks in
// one transaction.
func (a *articles) Delete(ctx context.Context, slug string, opts metav1.DeleteOptions) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		article := &v1.Article{}
		if err := tx.Where("name = ?", slug).First(article).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithCode(code.ErrArticleNotFound, err.Error())
			}

			return errors.WithCode(code.ErrDatabase, err.Error())
		}

		if err := tx.Where("articleId = ?", article.ID).Delete(&v1.Comment{}).Error; err != nil {
			return errors.WithCode(code.ErrDatabase, err.Error())
		}

		if err := tx.Where("articleId = ?", article.ID).Delete(&v1.Reaction{}).Error; err != nil {
			return errors.WithCode(code.ErrDatabase, err.Error())
		}

		if err := tx.Where("articleId = ?", article.ID).Delete(&v1.ArticleView{}).Error; err != nil {
			return errors.WithCode(code.ErrDatabase, err.Error())
		}

		if err := tx.Delete(article).Error; err != nil {
			return errors.WithCode(code.ErrDatabase, err.Error())
		}

		return nil
	})
}

// Get return an article by its slug.
func (a *articles) Get(ctx context.Context, slug string, opts metav1.GetOptions) (*v1.Article, error) {
	article := &v1.Article{}
	err := a.db.WithContext(ctx).Where("name = ?", slug).First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithCode(code.ErrArticleNotFound, err.Error())
		}

		return nil, errors.WithCode(code.ErrDatabase, err.Error())
	}

	return article, nil
}

// List return articles matching the filter, newest first.
func (a *articles) List(
	ctx context.Context,
	filter store.ArticleFilter,
	opts metav1.ListOptions,
) (*v1.ArticleList, error) {
	ret := &v1.ArticleList{}
	ol := gormutil.Unpointer(opts.Offset, opts.Limit)

	d := a.db.WithContext(ctx)
	if filter.ChannelID != 0 {
		d = d.Where("channelId = ?", filter.ChannelID)
	}
	if filter.CategoryID != 0 {
		d = d.Where("categoryId = ?", filter.CategoryID)
	}
	if filter.LocationID != 0 {
		d = d.Where("locationId = ?", filter.LocationID)
	}

	d = d.Offset(ol.Offset).
		Limit(ol.Limit).
		Order("id desc").
		Find(&ret.Items).
		Offset(-1).
		Limit(-1).
		Count(&ret.TotalCount)

	return ret, d.Error
}
