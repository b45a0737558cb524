// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package fake

import (
	"context"

	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/errors"

	"github.com/marmotedu/newsline/internal/pkg/code"
	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

type users struct {
	ds *datastore
}

func newUsers(ds *datastore) *users {
	return &users{ds: ds}
}

func (u *users) Create(ctx context.Context, user *v1.User, opts metav1.CreateOptions) error {
	u.ds.Lock()
	defer u.ds.Unlock()

	for _, x := range u.ds.users {
		if x.Name == user.Name {
			return errors.WithCode(code.ErrUserAlreadyExist, "record already exist")
		}
	}

	if user.ID == 0 {
		var max uint64
		for _, x := range u.ds.users {
			if x.ID > max {
				max = x.ID
			}
		}
		user.ID = max + 1
	}

	u.ds.users = append(u.ds.users, user)

	return nil
}

func (u *users) Update(ctx context.Context, user *v1.User, opts metav1.UpdateOptions) error {
	u.ds.Lock()
	defer u.ds.Unlock()

	for i, x := range u.ds.users {
		if x.Name == user.Name {
			u.ds.users[i] = user

			return nil
		}
	}

	return errors.WithCode(code.ErrUserNotFound, "record not found")
}

func (u *users) Delete(ctx context.Context, username string, opts metav1.DeleteOptions) error {
	u.ds.Lock()
	defer u.ds.Unlock()

	var user *v1.User
	remain := u.ds.users[:0]
	for _, x := range u.ds.users {
		if x.Name == username {
			user = x

			continue
		}
		remain = append(remain, x)
	}
	if user == nil {
		return errors.WithCode(code.ErrUserNotFound, "record not found")
	}
	u.ds.users = remain

	subs := u.ds.subscriptions[:0]
	for _, s := range u.ds.subscriptions {
		if s.UserID != user.ID {
			subs = append(subs, s)
		}
	}
	u.ds.subscriptions = subs

	reactions := u.ds.reactions[:0]
	for _, r := range u.ds.reactions {
		if r.UserID != user.ID {
			reactions = append(reactions, r)
		}
	}
	u.ds.reactions = reactions

	return nil
}

func (u *users) Get(ctx context.Context, username string, opts metav1.GetOptions) (*v1.User, error) {
	u.ds.RLock()
	defer u.ds.RUnlock()

	for _, x := range u.ds.users {
		if x.Name == username {
			return x, nil
		}
	}

	return nil, errors.WithCode(code.ErrUserNotFound, "record not found")
}

func (u *users) List(ctx context.Context, opts metav1.ListOptions) (*v1.UserList, error) {
	u.ds.RLock()
	defer u.ds.RUnlock()

	return &v1.UserList{
		ListMeta: metav1.ListMeta{TotalCount: int64(len(u.ds.users))},
		Items:    u.ds.users,
	}, nil
}
