// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package store

import (
	"context"

	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"

	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

// ChannelStore defines the channel storage interface.
type ChannelStore interface {
	Create(ctx context.Context, channel *v1.Channel, opts metav1.CreateOptions) error
	Update(ctx context.Context, channel *v1.Channel, opts metav1.UpdateOptions) error
	// Delete removes the channel and cascades to its articles and their
	// comments, reactions and view marks in one transaction.
	Delete(ctx context.Context, slug string, opts metav1.DeleteOptions) error
	Get(ctx context.Context, slug string, opts metav1.GetOptions) (*v1.Channel, error)
	List(ctx context.Context, opts metav1.ListOptions) (*v1.ChannelList, error)
}
