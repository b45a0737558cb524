// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package store

import (
	"context"

	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

// ReactionStore defines the reaction storage interface.
type ReactionStore interface {
	Get(ctx context.Context, articleID, userID uint64) (*v1.Reaction, error)
	Create(ctx context.Context, reaction *v1.Reaction) error
	Update(ctx context.Context, reaction *v1.Reaction) error
	Delete(ctx context.Context, articleID, userID uint64) error
	// Count returns the number of real like and dislike rows of an article.
	Count(ctx context.Context, articleID uint64) (likes, dislikes int64, err error)
}
