// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package clean removes comments whose author no longer exists. User deletion
// keeps comments in place, this job sweeps them once they aged out.
package clean

import (
	"context"

	"github.com/go-redsync/redsync/v4"

	"github.com/marmotedu/newsline/internal/apiserver/store/mysql"
	"github.com/marmotedu/newsline/internal/watcher/options"
	"github.com/marmotedu/newsline/internal/watcher/watcher"
	"github.com/marmotedu/newsline/pkg/log"
)

type cleanWatcher struct {
	ctx            context.Context
	mutex          *redsync.Mutex
	maxReserveDays int
}

// Run runs the watcher job.
func (cw *cleanWatcher) Run() {
	if err := cw.mutex.Lock(); err != nil {
		log.L(cw.ctx).Info("cleanWatcher already run.")

		return
	}

	defer func() {
		if _, err := cw.mutex.Unlock(); err != nil {
			log.L(cw.ctx).Errorf("could not release cleanWatcher lock. err: %v", err)

			return
		}
	}()

	db, err := mysql.GetMySQLFactoryOr(nil)
	if err != nil {
		log.L(cw.ctx).Errorw("get mysql store failed", "error", err)

		return
	}

	rowsAffected, err := db.Comments().ClearOrphaned(cw.ctx, cw.maxReserveDays)
	if err != nil {
		log.L(cw.ctx).Errorw("clean orphan comments failed", "error", err)

		return
	}

	log.L(cw.ctx).Debugf("clean orphan comments succ, %d rows affected", rowsAffected)
}

// Spec is parsed using the time zone of clean Cron instance as the default.
func (cw *cleanWatcher) Spec() string {
	return "@every 1d"
}

// Init initializes the watcher for later execution.
func (cw *cleanWatcher) Init(ctx context.Context, rs *redsync.Mutex, config interface{}) error {
	cfg, ok := config.(*options.WatcherOptions)
	if !ok {
		return watcher.ErrConfigUnavailable
	}

	*cw = cleanWatcher{
		ctx:            ctx,
		mutex:          rs,
		maxReserveDays: cfg.Clean.MaxReserveDays,
	}

	return nil
}

// nolint: gochecknoinits
func init() {
	watcher.Register("clean", &cleanWatcher{})
}
