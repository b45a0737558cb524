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

// LocationSrv defines functions used to handle location request.
type LocationSrv interface {
	Create(ctx context.Context, location *v1.Location, opts metav1.CreateOptions) error
	Delete(ctx context.Context, slug string, opts metav1.DeleteOptions) error
	Get(ctx context.Context, slug string, opts metav1.GetOptions) (*v1.Location, error)
	Tree(ctx context.Context) ([]*v1.Location, error)
}

type locationService struct {
	store store.Factory
}

var _ LocationSrv = (*locationService)(nil)

func newLocations(srv *service) *locationService {
	return &locationService{store: srv.store}
}

// Create stores a new location. A parent, when given, must exist.
func (l *locationService) Create(ctx context.Context, location *v1.Location, opts metav1.CreateOptions) error {
	if location.ParentID != nil {
		rows, err := l.rows(ctx)
		if err != nil {
			return err
		}
		found := false
		for _, x := range rows {
			if x.ID == *location.ParentID {
				found = true

				break
			}
		}
		if !found {
			return errors.WithCode(code.ErrLocationNotFound, "parent location %d not found", *location.ParentID)
		}
	}

	if err := l.store.Locations().Create(ctx, location, opts); err != nil {
		return errors.WithCode(code.ErrDatabase, err.Error())
	}

	return nil
}

// Delete refuses to remove a location that still has children or articles.
func (l *locationService) Delete(ctx context.Context, slug string, opts metav1.DeleteOptions) error {
	location, err := l.store.Locations().Get(ctx, slug, metav1.GetOptions{})
	if err != nil {
		return err
	}

	hasChildren, err := l.store.Locations().HasChildren(ctx, location.ID)
	if err != nil {
		return err
	}
	if hasChildren {
		return errors.WithCode(code.ErrLocationNotEmpty, "location %s still has children", slug)
	}

	articles, err := l.store.Articles().List(ctx, store.ArticleFilter{LocationID: location.ID}, metav1.ListOptions{})
	if err != nil {
		return errors.WithCode(code.ErrDatabase, err.Error())
	}
	if len(articles.Items) > 0 {
		return errors.WithCode(code.ErrLocationNotEmpty, "location %s still has articles", slug)
	}

	return l.store.Locations().Delete(ctx, slug, opts)
}

func (l *locationService) Get(ctx context.Context, slug string, opts metav1.GetOptions) (*v1.Location, error) {
	return l.store.Locations().Get(ctx, slug, opts)
}

// Tree returns the location forest, from the row cache when one has been
// initialized.
func (l *locationService) Tree(ctx context.Context) ([]*v1.Location, error) {
	rows, err := l.rows(ctx)
	if err != nil {
		return nil, err
	}

	return buildLocationForest(rows), nil
}

func (l *locationService) rows(ctx context.Context) ([]*v1.Location, error) {
	if cacheIns, err := cache.GetCacheInsOr(nil); err == nil {
		return cacheIns.GetLocations(ctx)
	}

	list, err := l.store.Locations().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, errors.WithCode(code.ErrDatabase, err.Error())
	}

	return list.Items, nil
}
