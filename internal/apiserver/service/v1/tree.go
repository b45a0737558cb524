// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package v1

import (
	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

// buildForest links flat rows into a forest with one pass over an id index.
// A row with a nil parent id is a root. Children keep input order. A row
// whose parent id is not in the index is dropped.
func buildForest[T any](items []*T, id func(*T) uint64, parentID func(*T) *uint64, attach func(parent, child *T)) []*T {
	index := make(map[uint64]*T, len(items))
	for _, item := range items {
		index[id(item)] = item
	}

	roots := []*T{}
	for _, item := range items {
		pid := parentID(item)
		if pid == nil {
			roots = append(roots, item)

			continue
		}
		if parent, ok := index[*pid]; ok {
			attach(parent, item)
		}
	}

	return roots
}

// buildCategoryForest builds the category forest without mutating rows, which
// may be shared with the cache.
func buildCategoryForest(rows []*v1.Category) []*v1.Category {
	items := make([]*v1.Category, 0, len(rows))
	for _, r := range rows {
		c := *r
		c.Children = nil
		items = append(items, &c)
	}

	return buildForest(items,
		func(c *v1.Category) uint64 { return c.ID },
		func(c *v1.Category) *uint64 { return c.ParentID },
		func(parent, child *v1.Category) { parent.Children = append(parent.Children, child) },
	)
}

// buildLocationForest builds the location forest without mutating rows.
func buildLocationForest(rows []*v1.Location) []*v1.Location {
	items := make([]*v1.Location, 0, len(rows))
	for _, r := range rows {
		l := *r
		l.Children = nil
		items = append(items, &l)
	}

	return buildForest(items,
		func(l *v1.Location) uint64 { return l.ID },
		func(l *v1.Location) *uint64 { return l.ParentID },
		func(parent, child *v1.Location) { parent.Children = append(parent.Children, child) },
	)
}
