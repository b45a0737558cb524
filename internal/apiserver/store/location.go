// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package store

import (
	"context"

	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"

	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

// LocationStore defines the location storage interface.
type LocationStore interface {
	Create(ctx context.Context, location *v1.Location, opts metav1.CreateOptions) error
	Update(ctx context.Context, location *v1.Location, opts metav1.UpdateOptions) error
	Delete(ctx context.Context, slug string, opts metav1.DeleteOptions) error
	Get(ctx context.Context, slug string, opts metav1.GetOptions) (*v1.Location, error)
	// HasChildren reports whether any location names the given one as parent.
	HasChildren(ctx context.Context, id uint64) (bool, error)
	List(ctx context.Context, opts metav1.ListOptions) (*v1.LocationList, error)
}
