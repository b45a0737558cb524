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

func TestCommentListNewestFirst(t *testing.T) {
	svc, factory := newTestService(t)
	seedArticle(t, factory, "first-post")
	ctx := context.Background()

	require.NoError(t, svc.Comments().Create(ctx, "first-post", &v1.Comment{UserID: 7, Body: "older"},
		metav1.CreateOptions{}))
	require.NoError(t, svc.Comments().Create(ctx, "first-post", &v1.Comment{UserID: 8, Body: "newer"},
		metav1.CreateOptions{}))

	list, err := svc.Comments().List(ctx, "first-post", metav1.ListOptions{})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "newer", list.Items[0].Body)
	assert.Equal(t, "older", list.Items[1].Body)
}

func TestCommentReplyMustShareArticle(t *testing.T) {
	svc, factory := newTestService(t)
	seedArticle(t, factory, "first-post")
	ctx := context.Background()

	other := &v1.Article{
		ObjectMeta: metav1.ObjectMeta{Name: "second-post"},
		ChannelID:  1,
		Title:      "other",
		Body:       "body",
	}
	require.NoError(t, factory.Articles().Create(ctx, other, metav1.CreateOptions{}))

	parent := &v1.Comment{UserID: 7, Body: "root"}
	require.NoError(t, svc.Comments().Create(ctx, "first-post", parent, metav1.CreateOptions{}))

	reply := &v1.Comment{UserID: 8, Body: "reply", ParentID: &parent.ID}
	assert.Error(t, svc.Comments().Create(ctx, "second-post", reply, metav1.CreateOptions{}))
	require.NoError(t, svc.Comments().Create(ctx, "first-post", &v1.Comment{
		UserID:   8,
		Body:     "reply",
		ParentID: &parent.ID,
	}, metav1.CreateOptions{}))
}
