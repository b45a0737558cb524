// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package v1

import (
	"context"
	"testing"

	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

func TestSubscribeLifecycle(t *testing.T) {
	svc, factory := newTestService(t)
	seedArticle(t, factory, "first-post")
	ctx := context.Background()

	require.NoError(t, svc.Channels().Subscribe(ctx, "daily-planet", 7))

	// duplicate subscribe is rejected
	assert.Error(t, svc.Channels().Subscribe(ctx, "daily-planet", 7))

	channel, err := svc.Channels().Get(ctx, "daily-planet", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), channel.SubscriberCount)

	subs, err := svc.Channels().Subscriptions(ctx, 7, metav1.ListOptions{})
	require.NoError(t, err)
	require.Len(t, subs.Items, 1)
	assert.Equal(t, "daily-planet", subs.Items[0].Name)

	require.NoError(t, svc.Channels().Unsubscribe(ctx, "daily-planet", 7))

	// unsubscribing twice is rejected
	assert.Error(t, svc.Channels().Unsubscribe(ctx, "daily-planet", 7))

	channel, err = svc.Channels().Get(ctx, "daily-planet", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), channel.SubscriberCount)
}

func TestChannelDeleteCascades(t *testing.T) {
	svc, factory := newTestService(t)
	article := seedArticle(t, factory, "first-post")
	ctx := context.Background()

	_, err := svc.Articles().SetReaction(ctx, "first-post", 7, true)
	require.NoError(t, err)
	_, err = svc.Articles().RecordView(ctx, "first-post", "user-7")
	require.NoError(t, err)
	require.NoError(t, svc.Comments().Create(ctx, "first-post", &v1.Comment{
		UserID: 7,
		Body:   "nice",
	}, metav1.CreateOptions{}))
	require.NoError(t, svc.Channels().Subscribe(ctx, "daily-planet", 7))

	require.NoError(t, svc.Channels().Delete(ctx, "daily-planet", metav1.DeleteOptions{}))

	_, err = svc.Articles().Get(ctx, "first-post", 0, metav1.GetOptions{})
	assert.Error(t, err)

	comments, err := factory.Comments().List(ctx, article.ID, metav1.ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, comments.Items)

	likes, dislikes, err := factory.Reactions().Count(ctx, article.ID)
	require.NoError(t, err)
	assert.Zero(t, likes)
	assert.Zero(t, dislikes)

	subs, err := svc.Channels().Subscriptions(ctx, 7, metav1.ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, subs.Items)
}

func TestArticleDeleteCascades(t *testing.T) {
	svc, factory := newTestService(t)
	article := seedArticle(t, factory, "first-post")
	ctx := context.Background()

	_, err := svc.Articles().SetReaction(ctx, "first-post", 7, true)
	require.NoError(t, err)
	require.NoError(t, svc.Comments().Create(ctx, "first-post", &v1.Comment{
		UserID: 7,
		Body:   "nice",
	}, metav1.CreateOptions{}))

	require.NoError(t, svc.Articles().Delete(ctx, "first-post", metav1.DeleteOptions{}))

	comments, err := factory.Comments().List(ctx, article.ID, metav1.ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, comments.Items)

	likes, _, err := factory.Reactions().Count(ctx, article.ID)
	require.NoError(t, err)
	assert.Zero(t, likes)
}
