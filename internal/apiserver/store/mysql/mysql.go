// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package mysql implements `github.com/marmotedu/newsline/internal/apiserver/store.Factory` interface.
package mysql

import (
	"fmt"
	"sync"

	"github.com/marmotedu/errors"
	"gorm.io/gorm"

	"github.com/marmotedu/newsline/internal/apiserver/store"
	genericoptions "github.com/marmotedu/newsline/internal/pkg/options"
)

type datastore struct {
	db *gorm.DB
}

func (ds *datastore) Users() store.UserStore {
	return newUsers(ds)
}

func (ds *datastore) Channels() store.ChannelStore {
	return newChannels(ds)
}

func (ds *datastore) Articles() store.ArticleStore {
	return newArticles(ds)
}

func (ds *datastore) Comments() store.CommentStore {
	return newComments(ds)
}

func (ds *datastore) Reactions() store.ReactionStore {
	return newReactions(ds)
}

func (ds *datastore) ArticleViews() store.ArticleViewStore {
	return newArticleViews(ds)
}

func (ds *datastore) Subscriptions() store.SubscriptionStore {
	return newSubscriptions(ds)
}

func (ds *datastore) Categories() store.CategoryStore {
	return newCategories(ds)
}

func (ds *datastore) Locations() store.LocationStore {
	return newLocations(ds)
}

func (ds *datastore) Close() error {
	db, err := ds.db.DB()
	if err != nil {
		return errors.Wrap(err, "get gorm db instance failed")
	}

	return db.Close()
}

var (
	mysqlFactory store.Factory
	once         sync.Once
)

// GetMySQLFactoryOr create mysql factory with the given config.
func GetMySQLFactoryOr(opts *genericoptions.MySQLOptions) (store.Factory, error) {
	if opts == nil && mysqlFactory == nil {
		return nil, fmt.Errorf("failed to get mysql store factory")
	}

	var err error
	var dbIns *gorm.DB
	once.Do(func() {
		dbIns, err = opts.NewClient()
		mysqlFactory = &datastore{dbIns}
	})

	if mysqlFactory == nil || err != nil {
		return nil, fmt.Errorf("failed to get mysql store factory, mysqlFactory: %+v, error: %w", mysqlFactory, err)
	}

	return mysqlFactory, nil
}
