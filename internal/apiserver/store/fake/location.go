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

type locations struct {
	ds *datastore
}

func newLocations(ds *datastore) *locations {
	return &locations{ds: ds}
}

func (l *locations) Create(ctx context.Context, location *v1.Location, opts metav1.CreateOptions) error {
	l.ds.Lock()
	defer l.ds.Unlock()

	if location.ID == 0 {
		var max uint64
		for _, x := range l.ds.locations {
			if x.ID > max {
				max = x.ID
			}
		}
		location.ID = max + 1
	}

	l.ds.locations = append(l.ds.locations, location)

	return nil
}

func (l *locations) Update(ctx context.Context, location *v1.Location, opts metav1.UpdateOptions) error {
	l.ds.Lock()
	defer l.ds.Unlock()

	for i, x := range l.ds.locations {
		if x.Name == location.Name {
			l.ds.locations[i] = location

			return nil
		}
	}

	return errors.WithCode(code.ErrLocationNotFound, "record not found")
}

func (l *locations) Delete(ctx context.Context, slug string, opts metav1.DeleteOptions) error {
	l.ds.Lock()
	defer l.ds.Unlock()

	remain := l.ds.locations[:0]
	for _, x := range l.ds.locations {
		if x.Name != slug {
			remain = append(remain, x)
		}
	}
	l.ds.locations = remain

	return nil
}

func (l *locations) Get(ctx context.Context, slug string, opts metav1.GetOptions) (*v1.Location, error) {
	l.ds.RLock()
	defer l.ds.RUnlock()

	for _, x := range l.ds.locations {
		if x.Name == slug {
			return x, nil
		}
	}

	return nil, errors.WithCode(code.ErrLocationNotFound, "record not found")
}

func (l *locations) HasChildren(ctx context.Context, id uint64) (bool, error) {
	l.ds.RLock()
	defer l.ds.RUnlock()

	for _, x := range l.ds.locations {
		if x.ParentID != nil && *x.ParentID == id {
			return true, nil
		}
	}

	return false, nil
}

func (l *locations) List(ctx context.Context, opts metav1.ListOptions) (*v1.LocationList, error) {
	l.ds.RLock()
	defer l.ds.RUnlock()

	return &v1.LocationList{
		ListMeta: metav1.ListMeta{TotalCount: int64(len(l.ds.locations))},
		Items:    l.ds.locations,
	}, nil
}
