// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package store

import (
	"context"

	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"

	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

// CommentStore defines the comment storage interface. Comments are addressed
// by their instance id.
type CommentStore interface {
	Create(ctx context.Context, comment *v1.Comment, opts metav1.CreateOptions) error
	Update(ctx context.Context, comment *v1.Comment, opts metav1.UpdateOptions) error
	Delete(ctx context.Context, instanceID string, opts metav1.DeleteOptions) error
	Get(ctx context.Context, instanceID string, opts metav1.GetOptions) (*v1.Comment, error)
	// List returns the comments of an article, newest first.
	List(ctx context.Context, articleID uint64, opts metav1.ListOptions) (*v1.CommentList, error)
	// ClearOrphaned removes comments whose author no longer exists and that
	// are older than maxReserveDays.
	ClearOrphaned(ctx context.Context, maxReserveDays int) (int64, error)
}
