// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package mysql

import (
	"context"

	"github.com/jinzhu/now"
	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/errors"
	"gorm.io/gorm"

	"github.com/marmotedu/newsline/internal/pkg/code"
	"github.com/marmotedu/newsline/internal/pkg/util/gormutil"
	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

type comments struct {
	db *gorm.DB
}

func newComments(ds *datastore) *comments {
	return &comments{ds.db}
}

// Create creates a new comment.
func (c *comments) Create(ctx context.Context, comment *v1.Comment, opts metav1.CreateOptions) error {
	return c.db.WithContext(ctx).Create(&comment).Error
}

// Update updates a comment body.
func (c *comments) Update(ctx context.Context, comment *v1.Comment, opts metav1.UpdateOptions) error {
	return c.db.WithContext(ctx).Save(comment).Error
}

// Delete deletes a comment by its instance id.
func (c *comments) Delete(ctx context.Context, instanceID string, opts metav1.DeleteOptions) error {
	err := c.db.WithContext(ctx).Where("instanceID = ?", instanceID).Delete(&v1.Comment{}).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.WithCode(code.ErrDatabase, err.Error())
	}

	return nil
}

// Get return a comment by its instance id.
func (c *comments) Get(ctx context.Context, instanceID string, opts metav1.GetOptions) (*v1.Comment, error) {
	comment := &v1.Comment{}
	err := c.db.WithContext(ctx).Where("instanceID = ?", instanceID).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithCode(code.ErrCommentNotFound, err.Error())
		}

		return nil, errors.WithCode(code.ErrDatabase, err.Error())
	}

	return comment, nil
}

// ClearOrphaned hard deletes comments left behind by deleted users once they
// are older than maxReserveDays.
func (c *comments) ClearOrphaned(ctx context.Context, maxReserveDays int) (int64, error) {
	cutoff := now.BeginningOfDay().AddDate(0, 0, -maxReserveDays)

	d := c.db.WithContext(ctx).
		Where("userId not in (?)", c.db.Model(&v1.User{}).Select("id")).
		Where("createdAt < ?", cutoff).
		Delete(&v1.Comment{})
	if d.Error != nil {
		return 0, errors.WithCode(code.ErrDatabase, d.Error.Error())
	}

	return d.RowsAffected, nil
}

// List return the comments of an article, newest first.
func (c *comments) List(ctx context.Context, articleID uint64, opts metav1.ListOptions) (*v1.CommentList, error) {
	ret := &v1.CommentList{}
	ol := gormutil.Unpointer(opts.Offset, opts.Limit)

	d := c.db.WithContext(ctx).
		Where("articleId = ?", articleID).
		Offset(ol.Offset).
		Limit(ol.Limit).
		Order("id desc").
		Find(&ret.Items).
		Offset(-1).
		Limit(-1).
		Count(&ret.TotalCount)

	return ret, d.Error
}
