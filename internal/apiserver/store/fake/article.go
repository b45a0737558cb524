// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package fake

import (
	"context"

	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/errors"

	"github.com/marmotedu/newsline/internal/apiserver/store"
	"github.com/marmotedu/newsline/internal/pkg/code"
	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

type articles struct {
	ds *datastore
}

func newArticles(ds *datastore) *articles {
	return &articles{ds: ds}
}

func (a *articles) Create(ctx context.Context, article *v1.Article, opts metav1.CreateOptions) error {
	a.ds.Lock()
	defer a.ds.Unlock()

	for _, x := range a.ds.articles {
		if x.Name == article.Name {
			return errors.WithCode(code.ErrArticleAlreadyExist, "record already exist")
		}
	}

	if article.ID == 0 {
		var max uint64
		for _, x := range a.ds.articles {
			if x.ID > max {
				max = x.ID
			}
		}
		article.ID = max + 1
	}

	a.ds.articles = append(a.ds.articles, article)

	return nil
}

func (a *articles) Update(ctx context.Context, article *v1.Article, opts metav1.UpdateOptions) error {
	a.ds.Lock()
	defer a.ds.Unlock()

	for i, x := range a.ds.articles {
		if x.Name == article.Name {
			a.ds.articles[i] = article

			return nil
		}
	}

	return errors.WithCode(code.ErrArticleNotFound, "record not found")
}

func (a *articles) Delete(ctx context.Context, slug string, opts metav1.DeleteOptions) error {
	a.ds.Lock()
	defer a.ds.Unlock()

	var article *v1.Article
	remain := a.ds.articles[:0]
	for _, x := range a.ds.articles {
		if x.Name == slug {
			article = x

			continue
		}
		remain = append(remain, x)
	}
	if article == nil {
		return errors.WithCode(code.ErrArticleNotFound, "record not found")
	}
	a.ds.articles = remain

	comments := a.ds.comments[:0]
	for _, x := range a.ds.comments {
		if x.ArticleID != article.ID {
			comments = append(comments, x)
		}
	}
	a.ds.comments = comments

	reactions := a.ds.reactions[:0]
	for _, x := range a.ds.reactions {
		if x.ArticleID != article.ID {
			reactions = append(reactions, x)
		}
	}
	a.ds.reactions = reactions

	views := a.ds.views[:0]
	for _, x := range a.ds.views {
		if x.ArticleID != article.ID {
			views = append(views, x)
		}
	}
	a.ds.views = views

	return nil
}

func (a *articles) Get(ctx context.Context, slug string, opts metav1.GetOptions) (*v1.Article, error) {
	a.ds.RLock()
	defer a.ds.RUnlock()

	for _, x := range a.ds.articles {
		if x.Name == slug {
			return x, nil
		}
	}

	return nil, errors.WithCode(code.ErrArticleNotFound, "record not found")
}

func (a *articles) List(
	ctx context.Context,
	filter store.ArticleFilter,
	opts metav1.ListOptions,
) (*v1.ArticleList, error) {
	a.ds.RLock()
	defer a.ds.RUnlock()

	items := []*v1.Article{}
	for _, x := range a.ds.articles {
		if filter.ChannelID != 0 && x.ChannelID != filter.ChannelID {
			continue
		}
		if filter.CategoryID != 0 && (x.CategoryID == nil || *x.CategoryID != filter.CategoryID) {
			continue
		}
		if filter.LocationID != 0 && (x.LocationID == nil || *x.LocationID != filter.LocationID) {
			continue
		}
		items = append(items, x)
	}

	return &v1.ArticleList{
		ListMeta: metav1.ListMeta{TotalCount: int64(len(items))},
		Items:    items,
	}, nil
}
