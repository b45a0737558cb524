// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package v1

import (
	"testing"

	"github.com/AlekSi/pointer"
	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

func category(id uint64, slug string, parentID *uint64) *v1.Category {
	return &v1.Category{
		ObjectMeta: metav1.ObjectMeta{ID: id, Name: slug},
		Title:      slug,
		ParentID:   parentID,
	}
}

func TestBuildCategoryForest(t *testing.T) {
	rows := []*v1.Category{
		category(1, "world", nil),
		category(2, "europe", pointer.ToUint64(1)),
		category(3, "asia", pointer.ToUint64(1)),
		category(4, "tech", nil),
	}

	forest := buildCategoryForest(rows)

	require.Len(t, forest, 2)
	assert.Equal(t, "world", forest[0].Name)
	assert.Equal(t, "tech", forest[1].Name)

	require.Len(t, forest[0].Children, 2)
	assert.Equal(t, "europe", forest[0].Children[0].Name)
	assert.Equal(t, "asia", forest[0].Children[1].Name)
	assert.Empty(t, forest[1].Children)
}

func TestBuildCategoryForestDropsOrphans(t *testing.T) {
	rows := []*v1.Category{
		category(1, "world", nil),
		category(2, "lost", pointer.ToUint64(99)),
	}

	forest := buildCategoryForest(rows)

	require.Len(t, forest, 1)
	assert.Equal(t, "world", forest[0].Name)
	assert.Empty(t, forest[0].Children)
}

func TestBuildCategoryForestDoesNotMutateRows(t *testing.T) {
	rows := []*v1.Category{
		category(1, "world", nil),
		category(2, "europe", pointer.ToUint64(1)),
	}

	buildCategoryForest(rows)
	forest := buildCategoryForest(rows)

	assert.Nil(t, rows[0].Children)
	require.Len(t, forest, 1)
	assert.Len(t, forest[0].Children, 1)
}

func TestBuildLocationForest(t *testing.T) {
	rows := []*v1.Location{
		{ObjectMeta: metav1.ObjectMeta{ID: 1, Name: "germany"}, Title: "Germany"},
		{ObjectMeta: metav1.ObjectMeta{ID: 2, Name: "berlin"}, Title: "Berlin", ParentID: pointer.ToUint64(1)},
	}

	forest := buildLocationForest(rows)

	require.Len(t, forest, 1)
	require.Len(t, forest[0].Children, 1)
	assert.Equal(t, "berlin", forest[0].Children[0].Name)
}
