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

func TestCategoryDeleteRefusesNonEmpty(t *testing.T) {
	svc, factory := newTestService(t)
	article := seedArticle(t, factory, "first-post")
	ctx := context.Background()

	root := &v1.Category{ObjectMeta: metav1.ObjectMeta{Name: "world"}, Title: "World"}
	require.NoError(t, svc.Categories().Create(ctx, root, metav1.CreateOptions{}))
	child := &v1.Category{ObjectMeta: metav1.ObjectMeta{Name: "europe"}, Title: "Europe", ParentID: &root.ID}
	require.NoError(t, svc.Categories().Create(ctx, child, metav1.CreateOptions{}))

	// still has children
	assert.Error(t, svc.Categories().Delete(ctx, "world", metav1.DeleteOptions{}))

	article.CategoryID = &child.ID
	require.NoError(t, factory.Articles().Update(ctx, article, metav1.UpdateOptions{}))

	// still has articles
	assert.Error(t, svc.Categories().Delete(ctx, "europe", metav1.DeleteOptions{}))

	article.CategoryID = nil
	require.NoError(t, factory.Articles().Update(ctx, article, metav1.UpdateOptions{}))

	require.NoError(t, svc.Categories().Delete(ctx, "europe", metav1.DeleteOptions{}))
	require.NoError(t, svc.Categories().Delete(ctx, "world", metav1.DeleteOptions{}))
}

func TestCategoryCreateUnknownParent(t *testing.T) {
	svc, _ := newTestService(t)

	parentID := uint64(99)
	err := svc.Categories().Create(context.Background(), &v1.Category{
		ObjectMeta: metav1.ObjectMeta{Name: "lost"},
		Title:      "Lost",
		ParentID:   &parentID,
	}, metav1.CreateOptions{})
	assert.Error(t, err)
}

func TestCategoryTree(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	root := &v1.Category{ObjectMeta: metav1.ObjectMeta{Name: "world"}, Title: "World"}
	require.NoError(t, svc.Categories().Create(ctx, root, metav1.CreateOptions{}))
	require.NoError(t, svc.Categories().Create(ctx, &v1.Category{
		ObjectMeta: metav1.ObjectMeta{Name: "europe"},
		Title:      "Europe",
		ParentID:   &root.ID,
	}, metav1.CreateOptions{}))

	forest, err := svc.Categories().Tree(ctx)
	require.NoError(t, err)
	require.Len(t, forest, 1)
	require.Len(t, forest[0].Children, 1)
	assert.Equal(t, "europe", forest[0].Children[0].Name)
}
