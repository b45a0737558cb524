// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package fake implements an in-memory store.Factory used by tests.
package fake

import (
	"sync"

	"github.com/marmotedu/newsline/internal/apiserver/store"
	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

type datastore struct {
	sync.RWMutex

	users         []*v1.User
	channels      []*v1.Channel
	articles      []*v1.Article
	comments      []*v1.Comment
	reactions     []*v1.Reaction
	views         []*v1.ArticleView
	subscriptions []*v1.Subscription
	categories    []*v1.Category
	locations     []*v1.Location
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
	return nil
}

// NewFakeStore returns an empty in-memory store factory.
func NewFakeStore() store.Factory {
	return &datastore{}
}
