// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package mysql

import (
	"context"

	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/errors"
	"gorm.io/gorm"

	"github.com/marmotedu/newsline/internal/pkg/code"
	"github.com/marmotedu/newsline/internal/pkg/util/gormutil"
	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

type categories struct {
	db *gorm.DB
}

func newCategories(ds *datastore) *categories {
	return &categories{ds.db}
}

// Create creates a new category.
func (c *categories) Create(ctx context.Context, category *v1.Category, opts metav1.CreateOptions) error {
	return c.db.WithContext(ctx).Create(&category).Error
}

// Update updates a category.
func (c *categories) Update(ctx context.Context, category *v1.Category, opts metav1.UpdateOptions) error {
	return c.db.WithContext(ctx).Save(category).Error
}

// Delete deletes a category by its slug.
func (c *categories) Delete(ctx context.Context, slug string, opts metav1.DeleteOptions) error {
	err := c.db.WithContext(ctx).Where("name = ?", slug).Delete(&v1.Category{}).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.WithCode(code.ErrDatabase, err.Error())
	}

	return nil
}

// Get return a category by its slug.
func (c *categories) Get(ctx context.Context, slug string, opts metav1.GetOptions) (*v1.Category, error) {
	category := &v1.Category{}
	err := c.db.WithContext(ctx).Where("name = ?", slug).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithCode(code.ErrCategoryNotFound, err.Error())
		}

		return nil, errors.WithCode(code.ErrDatabase, err.Error())
	}

	return category, nil
}

// HasChildren reports whether any category names the given one as parent.
func (c *categories) HasChildren(ctx context.Context, id uint64) (bool, error) {
	var count int64
	d := c.db.WithContext(ctx).Model(&v1.Category{}).Where("parentId = ?", id).Count(&count)
	if d.Error != nil {
		return false, errors.WithCode(code.ErrDatabase, d.Error.Error())
	}

	return count > 0, nil
}

// List return all categories in insertion order.
func (c *categories) List(ctx context.Context, opts metav1.ListOptions) (*v1.CategoryList, error) {
	ret := &v1.CategoryList{}
	ol := gormutil.Unpointer(opts.Offset, opts.Limit)

	d := c.db.WithContext(ctx).
		Offset(ol.Offset).
		Limit(ol.Limit).
		Order("id asc").
		Find(&ret.Items).
		Offset(-1).
		Limit(-1).
		Count(&ret.TotalCount)

	return ret, d.Error
}
