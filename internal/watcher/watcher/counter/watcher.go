// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package counter reconciles the denormalized subscriber counter of every
// channel with the subscription table. Subscribe and unsubscribe update the
// counter opportunistically, this job repairs any drift.
package counter

import (
	"context"

	"github.com/go-redsync/redsync/v4"
	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"

	"github.com/marmotedu/newsline/internal/apiserver/store/mysql"
	"github.com/marmotedu/newsline/internal/watcher/options"
	"github.com/marmotedu/newsline/internal/watcher/watcher"
	"github.com/marmotedu/newsline/pkg/log"
)

type counterWatcher struct {
	ctx   context.Context
	mutex *redsync.Mutex
}

// Run runs the watcher job.
func (cw *counterWatcher) Run() {
	if err := cw.mutex.Lock(); err != nil {
		log.L(cw.ctx).Info("counterWatcher already run.")

		return
	}

	defer func() {
		if _, err := cw.mutex.Unlock(); err != nil {
			log.L(cw.ctx).Errorf("could not release counterWatcher lock. err: %v", err)

			return
		}
	}()

	db, err := mysql.GetMySQLFactoryOr(nil)
	if err != nil {
		log.L(cw.ctx).Errorw("get mysql store failed", "error", err)

		return
	}

	channels, err := db.Channels().List(cw.ctx, metav1.ListOptions{})
	if err != nil {
		log.L(cw.ctx).Errorw("list channels failed", "error", err)

		return
	}

	var repaired int
	for _, channel := range channels.Items {
		count, err := db.Subscriptions().Count(cw.ctx, channel.ID)
		if err != nil {
			log.L(cw.ctx).Errorw("count subscribers failed", "channel", channel.Name, "error", err)

			continue
		}

		if channel.SubscriberCount == count {
			continue
		}

		channel.SubscriberCount = count
		if err := db.Channels().Update(cw.ctx, channel, metav1.UpdateOptions{}); err != nil {
			log.L(cw.ctx).Errorw("repair subscriber counter failed", "channel", channel.Name, "error", err)

			continue
		}
		repaired++
	}

	log.L(cw.ctx).Debugf("reconcile subscriber counters succ, %d channels repaired", repaired)
}

// Spec is parsed using the time zone of counter Cron instance as the default.
func (cw *counterWatcher) Spec() string {
	return "@every 1h"
}

// Init initializes the watcher for later execution.
func (cw *counterWatcher) Init(ctx context.Context, rs *redsync.Mutex, config interface{}) error {
	if _, ok := config.(*options.WatcherOptions); !ok {
		return watcher.ErrConfigUnavailable
	}

	*cw = counterWatcher{
		ctx:   ctx,
		mutex: rs,
	}

	return nil
}

// nolint: gochecknoinits
func init() {
	watcher.Register("counter", &counterWatcher{})
}
