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

type users struct {
	db *gorm.DB
}

func newUsers(ds *datastore) *users {
	return &users{ds.db}
}

// Create creates a new user account.
func (u *users) Create(ctx context.Context, user *v1.User, opts metav1.CreateOptions) error {
	return u.db.WithContext(ctx).Create(&user).Error
}

// Update updates an user account information.
func (u *users) Update(ctx context.Context, user *v1.User, opts metav1.UpdateOptions) error {
	return u.db.WithContext(ctx).Save(user).Error
}

// Delete deletes the user and the rows it owns in one transaction. Comments
// are left behind and swept by the watcher.
func (u *users) Delete(ctx context.Context, username string, opts metav1.DeleteOptions) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user := &v1.User{}
		if err := tx.Where("name = ?", username).First(user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithCode(code.ErrUserNotFound, err.Error())
			}

			return errors.WithCode(code.ErrDatabase, err.Error())
		}

		if err := tx.Where("userId = ?", user.ID).Delete(&v1.Subscription{}).Error; err != nil {
			return errors.WithCode(code.ErrDatabase, err.Error())
		}

		if err := tx.Where("userId = ?", user.ID).Delete(&v1.Reaction{}).Error; err != nil {
			return errors.WithCode(code.ErrDatabase, err.Error())
		}

		if err := tx.Delete(user).Error; err != nil {
			return errors.WithCode(code.ErrDatabase, err.Error())
		}

		return nil
	})
}

// Get return an user by the user identifier.
func (u *users) Get(ctx context.Context, username string, opts metav1.GetOptions) (*v1.User, error) {
	user := &v1.User{}
	err := u.db.WithContext(ctx).Where("name = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithCode(code.ErrUserNotFound, err.Error())
		}

		return nil, errors.WithCode(code.ErrDatabase, err.Error())
	}

	return user, nil
}

// List return all users.
func (u *users) List(ctx context.Context, opts metav1.ListOptions) (*v1.UserList, error) {
	ret := &v1.UserList{}
	ol := gormutil.Unpointer(opts.Offset, opts.Limit)

	d := u.db.WithContext(ctx).
		Offset(ol.Offset).
		Limit(ol.Limit).
		Order("id desc").
		Find(&ret.Items).
		Offset(-1).
		Limit(-1).
		Count(&ret.TotalCount)

	return ret, d.Error
}
