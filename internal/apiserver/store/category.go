// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package store

import (
	"context"

	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"

	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

// CategoryStore defines the category storage interface.
type CategoryStore interface {
	Create(ctx context.Context, category *v1.Category, opts metav1.CreateOptions) error
	Update(ctx context.Context, category *v1.Category, opts metav1.UpdateOptions) error
	Delete(ctx context.Context, slug string, opts metav1.DeleteOptions) error
	Get(ctx context.Context, slug string, opts metav1.GetOptions) (*v1.Category, error)
	// HasChildren reports whether any category names the given one as parent.
	HasChildren(ctx context.Context, id uint64) (bool, error)
	List(ctx context.Context, opts metav1.ListOptions) (*v1.CategoryList, error)
}
