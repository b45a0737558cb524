// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package store

//go:generate mockgen -self_package=github.com/marmotedu/newsline/internal/apiserver/store -destination mock_store.go -package store github.com/marmotedu/newsline/internal/apiserver/store Factory,UserStore,ChannelStore,ArticleStore,CommentStore,ReactionStore,ArticleViewStore,SubscriptionStore,CategoryStore,LocationStore

var client Factory

// Factory defines the newsline platform storage interface.
type Factory interface {
	Users() UserStore
	Channels() ChannelStore
	Articles() ArticleStore
	Comments() CommentStore
	Reactions() ReactionStore
	ArticleViews() ArticleViewStore
	Subscriptions() SubscriptionStore
	Categories() CategoryStore
	Locations() LocationStore
	Close() error
}

// Client return the store client instance.
func Client() Factory {
	return client
}

// SetClient set the newsline store client.
func SetClient(factory Factory) {
	client = factory
}
