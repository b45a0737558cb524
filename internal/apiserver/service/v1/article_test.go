// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package v1

import (
	"context"
	"testing"

	"github.com/AlekSi/pointer"
	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmotedu/newsline/internal/apiserver/store"
	"github.com/marmotedu/newsline/internal/apiserver/store/fake"
	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

func newTestService(t *testing.T) (Service, store.Factory) {
	t.Helper()

	factory := fake.NewFakeStore()

	return NewService(factory), factory
}

func seedArticle(t *testing.T, factory store.Factory, slug string) *v1.Article {
	t.Helper()

	ctx := context.Background()

	channel := &v1.Channel{
		ObjectMeta: metav1.ObjectMeta{Name: "daily-planet"},
		Title:      "Daily Planet",
		OwnerID:    1,
	}
	if err := factory.Channels().Create(ctx, channel, metav1.CreateOptions{}); err != nil {
		chans, listErr := factory.Channels().List(ctx, metav1.ListOptions{})
		require.NoError(t, listErr)
		channel = chans.Items[0]
	}

	article := &v1.Article{
		ObjectMeta: metav1.ObjectMeta{Name: slug},
		ChannelID:  channel.ID,
		AuthorID:   1,
		Title:      "title",
		Body:       "body",
		Status:     v1.ArticleStatusPublished,
	}
	require.NoError(t, factory.Articles().Create(ctx, article, metav1.CreateOptions{}))

	return article
}

func TestRecordViewCountsOncePerIdentity(t *testing.T) {
	svc, factory := newTestService(t)
	seedArticle(t, factory, "first-post")
	ctx := context.Background()

	result, err := svc.Articles().RecordView(ctx, "first-post", "user-7")
	require.NoError(t, err)
	assert.True(t, result.Counted)
	assert.Equal(t, int64(1), result.ViewCount)

	result, err = svc.Articles().RecordView(ctx, "first-post", "user-7")
	require.NoError(t, err)
	assert.False(t, result.Counted)
	assert.Equal(t, int64(1), result.ViewCount)

	result, err = svc.Articles().RecordView(ctx, "first-post", "ip-10.0.0.9")
	require.NoError(t, err)
	assert.True(t, result.Counted)
	assert.Equal(t, int64(2), result.ViewCount)
}

func TestRecordViewUnknownArticle(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Articles().RecordView(context.Background(), "no-such-slug", "user-7")
	assert.Error(t, err)
}

func TestSetReactionToggleAndFlip(t *testing.T) {
	svc, factory := newTestService(t)
	seedArticle(t, factory, "first-post")
	ctx := context.Background()

	// insert
	summary, err := svc.Articles().SetReaction(ctx, "first-post", 7, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.LikeCount)
	assert.Equal(t, int64(0), summary.DislikeCount)
	assert.Equal(t, v1.ReactionLike, summary.UserReaction)

	// flip
	summary, err = svc.Articles().SetReaction(ctx, "first-post", 7, false)
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.LikeCount)
	assert.Equal(t, int64(1), summary.DislikeCount)
	assert.Equal(t, v1.ReactionDislike, summary.UserReaction)

	// toggle off
	summary, err = svc.Articles().SetReaction(ctx, "first-post", 7, false)
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.LikeCount)
	assert.Equal(t, int64(0), summary.DislikeCount)
	assert.Equal(t, v1.ReactionNone, summary.UserReaction)
}

func TestReactionCountsIncludeAdminFloors(t *testing.T) {
	svc, factory := newTestService(t)
	seedArticle(t, factory, "first-post")
	ctx := context.Background()

	_, err := svc.Articles().SetReaction(ctx, "first-post", 7, true)
	require.NoError(t, err)
	_, err = svc.Articles().SetReaction(ctx, "first-post", 8, false)
	require.NoError(t, err)

	_, err = svc.Articles().SetAdminCounts(ctx, "first-post", 100, 10, nil)
	require.NoError(t, err)

	summary, err := svc.Articles().GetReactions(ctx, "first-post", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(101), summary.LikeCount)
	assert.Equal(t, int64(11), summary.DislikeCount)
	assert.Equal(t, v1.ReactionLike, summary.UserReaction)
}

func TestSetAdminCountsViewFloorIsMonotonic(t *testing.T) {
	svc, factory := newTestService(t)
	seedArticle(t, factory, "first-post")
	ctx := context.Background()

	article, err := svc.Articles().SetAdminCounts(ctx, "first-post", 0, 0, pointer.ToInt64(500))
	require.NoError(t, err)
	assert.Equal(t, int64(500), article.ViewCount)

	article, err = svc.Articles().SetAdminCounts(ctx, "first-post", 0, 0, pointer.ToInt64(5))
	require.NoError(t, err)
	assert.Equal(t, int64(500), article.ViewCount)
}

func TestGetEnrichesArticle(t *testing.T) {
	svc, factory := newTestService(t)
	seedArticle(t, factory, "first-post")
	ctx := context.Background()

	_, err := svc.Articles().SetReaction(ctx, "first-post", 7, true)
	require.NoError(t, err)

	article, err := svc.Articles().Get(ctx, "first-post", 7, metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), article.LikeCount)
	assert.Equal(t, v1.ReactionLike, article.UserReaction)

	article, err = svc.Articles().Get(ctx, "first-post", 8, metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, v1.ReactionNone, article.UserReaction)
}

func TestCreateArticleDuplicateSlug(t *testing.T) {
	svc, factory := newTestService(t)
	seedArticle(t, factory, "first-post")
	ctx := context.Background()

	err := svc.Articles().Create(ctx, "daily-planet", &v1.Article{
		ObjectMeta: metav1.ObjectMeta{Name: "first-post"},
		Title:      "dup",
		Body:       "body",
	}, metav1.CreateOptions{})
	assert.Error(t, err)
}
