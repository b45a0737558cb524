// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package cache caches category and location rows in memory so the forest
// endpoints never hit mysql on the hot path. Instances across the cluster are
// kept coherent through redis pub/sub notifications.
package cache

import (
	"context"
	"sync"

	"github.com/dgraph-io/ristretto"
	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/errors"

	"github.com/marmotedu/newsline/internal/apiserver/store"
	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
)

const (
	categoryRowsKey = "categories"
	locationRowsKey = "locations"
)

// Cache is used to store category and location rows.
type Cache struct {
	lock *sync.RWMutex
	cli  store.Factory
	rows *ristretto.Cache
}

var (
	onceCache sync.Once
	cacheIns  *Cache
)

// GetCacheInsOr return cache instance.
func GetCacheInsOr(cli store.Factory) (*Cache, error) {
	var err error
	if cli != nil {
		onceCache.Do(func() {
			var rowsCache *ristretto.Cache

			c := &ristretto.Config{
				NumCounters: 1e7,
				MaxCost:     1 << 30,
				BufferItems: 64,
				Cost:        nil,
			}

			rowsCache, err = ristretto.NewCache(c)
			if err != nil {
				return
			}

			cacheIns = &Cache{
				cli:  cli,
				lock: new(sync.RWMutex),
				rows: rowsCache,
			}
		})
	}

	if cacheIns == nil {
		return nil, errors.New("cache instance is not initialized")
	}

	return cacheIns, err
}

// GetCategories return all category rows, from memory when warm.
func (c *Cache) GetCategories(ctx context.Context) ([]*v1.Category, error) {
	c.lock.RLock()
	value, ok := c.rows.Get(categoryRowsKey)
	c.lock.RUnlock()
	if ok {
		return value.([]*v1.Category), nil
	}

	list, err := c.cli.Categories().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "list categories failed")
	}

	c.lock.Lock()
	c.rows.Set(categoryRowsKey, list.Items, 1)
	c.lock.Unlock()

	return list.Items, nil
}

// GetLocations return all location rows, from memory when warm.
func (c *Cache) GetLocations(ctx context.Context) ([]*v1.Location, error) {
	c.lock.RLock()
	value, ok := c.rows.Get(locationRowsKey)
	c.lock.RUnlock()
	if ok {
		return value.([]*v1.Location), nil
	}

	list, err := c.cli.Locations().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "list locations failed")
	}

	c.lock.Lock()
	c.rows.Set(locationRowsKey, list.Items, 1)
	c.lock.Unlock()

	return list.Items, nil
}

// Reload drops and repopulates both row sets.
func (c *Cache) Reload() error {
	c.lock.Lock()
	defer c.lock.Unlock()

	ctx := context.Background()

	categories, err := c.cli.Categories().List(ctx, metav1.ListOptions{})
	if err != nil {
		return errors.Wrap(err, "list categories failed")
	}

	locations, err := c.cli.Locations().List(ctx, metav1.ListOptions{})
	if err != nil {
		return errors.Wrap(err, "list locations failed")
	}

	c.rows.Clear()
	c.rows.Set(categoryRowsKey, categories.Items, 1)
	c.rows.Set(locationRowsKey, locations.Items, 1)

	return nil
}
