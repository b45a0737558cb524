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

type locations struct {
	db *gorm.DB
}

func newLocations(ds *datastore) *locations {
	return &locations{ds.db}
}

// Create creates a new location.
func (l *locations) Create(ctx context.Context, location *v1.Location, opts metav1.CreateOptions) error {
	return l.db.WithContext(ctx).Create(&location).Error
}

// Update updates a location.
func (l *locations) Update(ctx context.Context, location *v1.Location, opts metav1.UpdateOptions) error {
	return l.db.WithContext(ctx).Save(location).Error
}

// Delete deletes a location by its slug.
func (l *locations) Delete(ctx context.Context, slug string, opts metav1.DeleteOptions) error {
	err := l.db.WithContext(ctx).Where("name = ?", slug).Delete(&v1.Location{}).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.WithCode(code.ErrDatabase, err.Error())
	}

	return nil
}

// Get return a location by its slug.
func (l *locations) Get(ctx context.Context, slug string, opts metav1.GetOptions) (*v1.Location, error) {
	location := &v1.Location{}
	err := l.db.WithContext(ctx).Where("name = ?", slug).First(&location).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithCode(code.ErrLocationNotFound, err.Error())
		}

		return nil, errors.WithCode(code.ErrDatabase, err.Error())
	}

	return location, nil
}

// HasChildren reports whether any location names the given one as parent.
func (l *locations) HasChildren(ctx context.Context, id uint64) (bool, error) {
	var count int64
	d := l.db.WithContext(ctx).Model(&v1.Location{}).Where("parentId = ?", id).Count(&count)
	if d.Error != nil {
		return false, errors.WithCode(code.ErrDatabase, d.Error.Error())
	}

	return count > 0, nil
}

// List return all locations in insertion order.
func (l *locations) List(ctx context.Context, opts metav1.ListOptions) (*v1.LocationList, error) {
	ret := &v1.LocationList{}
	ol := gormutil.Unpointer(opts.Offset, opts.Limit)

	d := l.db.WithContext(ctx).
		Offset(ol.Offset).
		Limit(ol.Limit).
		Order("id asc").
		Find(&ret.Items).
		Offset(-1).
		Limit(-1).
		Count(&ret.TotalCount)

	return ret, d.Error
}
