// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package watcher

import (
	"github.com/marmotedu/newsline/internal/apiserver/store"
	"github.com/marmotedu/newsline/internal/apiserver/store/mysql"
	"github.com/marmotedu/newsline/internal/watcher/config"
	"github.com/marmotedu/newsline/pkg/log"
)

type watcherServer struct {
	job *watchJob
}

// preparedWatcherServer is a private wrapper that enforces a call of
// PrepareRun() before Run can be invoked.
type preparedWatcherServer struct {
	*watcherServer
}

func createWatcherServer(cfg *config.Config) (*watcherServer, error) {
	storeIns, err := mysql.GetMySQLFactoryOr(cfg.MySQLOptions)
	if err != nil {
		return nil, err
	}
	store.SetClient(storeIns)

	return &watcherServer{
		job: newWatchJob(cfg.RedisOptions, cfg.WatcherOptions),
	}, nil
}

func (s *watcherServer) PrepareRun() preparedWatcherServer {
	s.job.addWatchers()

	return preparedWatcherServer{s}
}

func (s preparedWatcherServer) Run(stopCh <-chan struct{}) error {
	s.job.Start()

	log.Info("Now watcher jobs are scheduled")

	// blocking here via channel to prevents the process exit.
	<-stopCh

	ctx := s.job.Stop()
	// waits for running jobs to complete.
	<-ctx.Done()

	return nil
}
