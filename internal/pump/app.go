// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package pump drains buffered article view records from redis and writes
// them to the configured back-ends.
package pump

import (
	genericapiserver "github.com/marmotedu/newsline/internal/pkg/server"
	"github.com/marmotedu/newsline/internal/pump/config"
	"github.com/marmotedu/newsline/internal/pump/options"
	"github.com/marmotedu/newsline/pkg/app"
	"github.com/marmotedu/newsline/pkg/log"
)

const commandDesc = `Newsline Pump is a pluggable analytics purger to move article view
data generated by the newsline-apiserver to any back-end.

Find more newsline-pump information at:
    https://github.com/marmotedu/newsline/blob/master/docs/guide/en-US/cmd/newsline-pump.md`

// NewApp creates an App object with default parameters.
func NewApp(basename string) *app.App {
	opts := options.NewOptions()
	application := app.NewApp("Newsline Pump Server",
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
