// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package mysql

import (
	"context"

	"github.com/marmotedu/errors"
	"gorm.io/gorm"

	"github.com/marmotedu/newsline/internal/pkg/code"
	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

type reactions struct {
	db *gorm.DB
}

func newReactions(ds *datastore) *reactions {
	return &reactions{ds.db}
}

// Get return the reaction of a user on an article. gorm.ErrRecordNotFound is
// translated so callers can branch on absence.
func (r *reactions) Get(ctx context.Context, articleID, userID uint64) (*v1.Reaction, error) {
	reaction := &v1.Reaction{}
	err := r.db.WithContext(ctx).
		Where("articleId = ? and userId = ?", articleID, userID).
		First(&reaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		return nil, errors.WithCode(code.ErrDatabase, err.Error())
	}

	return reaction, nil
}

// Create inserts a reaction row.
func (r *reactions) Create(ctx context.Context, reaction *v1.Reaction) error {
	return r.db.WithContext(ctx).Create(&reaction).Error
}

// Update flips a reaction row in place.
func (r *reactions) Update(ctx context.Context, reaction *v1.Reaction) error {
	return r.db.WithContext(ctx).Save(reaction).Error
}

// Delete removes the reaction of a user on an article.
func (r *reactions) Delete(ctx context.Context, articleID, userID uint64) error {
	err := r.db.WithContext(ctx).
		Where("articleId = ? and userId = ?", articleID, userID).
		Delete(&v1.Reaction{}).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.WithCode(code.ErrDatabase, err.Error())
	}

	return nil
}

// Count returns the real like and dislike row counts of an article. Synthetic
// rows owned by the sentinel user are excluded.
func (r *reactions) Count(ctx context.Context, articleID uint64) (likes, dislikes int64, err error) {
	d := r.db.WithContext(ctx).Model(&v1.Reaction{}).
		Where("articleId = ? and userId <> ? and isLike = ?", articleID, v1.AdminUserID, true).
		Count(&likes)
	if d.Error != nil {
		return 0, 0, errors.WithCode(code.ErrDatabase, d.Error.Error())
	}

	d = r.db.WithContext(ctx).Model(&v1.Reaction{}).
		Where("articleId = ? and userId <> ? and isLike = ?", articleID, v1.AdminUserID, false).
		Count(&dislikes)
	if d.Error != nil {
		return 0, 0, errors.WithCode(code.ErrDatabase, d.Error.Error())
	}

	return likes, dislikes, nil
}
