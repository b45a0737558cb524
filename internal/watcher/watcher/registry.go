// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package watcher provides the registry the periodic jobs register
// themselves into.
package watcher

import (
	"context"
	"errors"
	"sync"

	"github.com/go-redsync/redsync/v4"
	"github.com/robfig/cron/v3"
)

// ErrConfigUnavailable defines the error when the watcher configuration is not
// of the expected type.
var ErrConfigUnavailable = errors.New("configuration is unavailable")

var (
	registryLock = new(sync.Mutex)
	registry     = make(map[string]Watcher)
)

// Watcher is a periodic job protected by a distributed mutex so that only one
// replica runs it at a time.
type Watcher interface {
	Init(ctx context.Context, rs *redsync.Mutex, config interface{}) error
	Spec() string
	cron.Job
}

// Register registers a watcher by name. Registering two watchers under the
// same name panics.
func Register(name string, watcher Watcher) {
	registryLock.Lock()
	defer registryLock.Unlock()

	if _, ok := registry[name]; ok {
		panic("watcher " + name + " registered twice")
	}

	registry[name] = watcher
}

// ListWatchers returns the registered watchers.
func ListWatchers() map[string]Watcher {
	registryLock.Lock()
	defer registryLock.Unlock()

	watchers := make(map[string]Watcher, len(registry))
	for name, watcher := range registry {
		watchers[name] = watcher
	}

	return watchers
}
