// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package watcher runs the periodic maintenance jobs of the platform, like
// sweeping orphan comments and reconciling subscriber counters.
package watcher

import (
	genericapiserver "github.com/marmotedu/newsline/internal/pkg/server"
	"github.com/marmotedu/newsline/internal/watcher/config"
	"github.com/marmotedu/newsline/internal/watcher/options"
	"github.com/marmotedu/newsline/pkg/app"
	"github.com/marmotedu/newsline/pkg/log"
)

const commandDesc = `Newsline Watcher is a pluggable watcher service used to do some periodic works
like sweeping orphan comments and reconciling channel subscriber counters.

Find more newsline-watcher information at:
    https://github.com/marmotedu/newsline/blob/master/docs/guide/en-US/cmd/newsline-watcher.md`

// NewApp creates an App object with default parameters.
func NewApp(basename string) *app.App {
	opts := options.NewOptions()
	application := app.NewApp("Newsline Watcher Server",
		basename,
		app.WithOptions(opts),
		app.WithDescription(commandDesc),
		app.WithDefaultValidArgs(),
		app.WithRunFunc(run(opts)),
	)

	return application
}

func run(opts *options.Options) app.RunFunc {
	return func(basename string) error {
		log.Init(opts.Log)
		defer log.Flush()

		cfg, err := config.CreateConfigFromOptions(opts)
		if err != nil {
			return err
		}

		stopCh := genericapiserver.SetupSignalHandler()

		return Run(cfg, stopCh)
	}
}
