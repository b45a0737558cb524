// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package fake

import (
	"context"

	"gorm.io/gorm"

	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

type reactions struct {
	ds *datastore
}

func newReactions(ds *datastore) *reactions {
	return &reactions{ds: ds}
}

func (r *reactions) Get(ctx context.Context, articleID, userID uint64) (*v1.Reaction, error) {
	r.ds.RLock()
	defer r.ds.RUnlock()

	for _, x := range r.ds.reactions {
		if x.ArticleID == articleID && x.UserID == userID {
			return x, nil
		}
	}

	return nil, gorm.ErrRecordNotFound
}

func (r *reactions) Create(ctx context.Context, reaction *v1.Reaction) error {
	r.ds.Lock()
	defer r.ds.Unlock()

	if reaction.ID == 0 {
		var max uint64
		for _, x := range r.ds.reactions {
			if x.ID > max {
				max = x.ID
			}
		}
		reaction.ID = max + 1
	}

	r.ds.reactions = append(r.ds.reactions, reaction)

	return nil
}

func (r *reactions) Update(ctx context.Context, reaction *v1.Reaction) error {
	r.ds.Lock()
	defer r.ds.Unlock()

	for i, x := range r.ds.reactions {
		if x.ArticleID == reaction.ArticleID && x.UserID == reaction.UserID {
			r.ds.reactions[i] = reaction

			return nil
		}
	}

	return gorm.ErrRecordNotFound
}

func (r *reactions) Delete(ctx context.Context, articleID, userID uint64) error {
	r.ds.Lock()
	defer r.ds.Unlock()

	remain := r.ds.reactions[:0]
	for _, x := range r.ds.reactions {
		if x.ArticleID == articleID && x.UserID == userID {
			continue
		}
		remain = append(remain, x)
	}
	r.ds.reactions = remain

	return nil
}

func (r *reactions) Count(ctx context.Context, articleID uint64) (likes, dislikes int64, err error) {
	r.ds.RLock()
	defer r.ds.RUnlock()

	for _, x := range r.ds.reactions {
		if x.ArticleID != articleID || x.UserID == v1.AdminUserID {
			continue
		}
		if x.IsLike {
			likes++
		} else {
			dislikes++
		}
	}

	return likes, dislikes, nil
}
