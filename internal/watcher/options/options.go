// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package options contains flags and options for initializing a watcher
package options

import (
	cliflag "github.com/marmotedu/component-base/pkg/cli/flag"
	"github.com/marmotedu/component-base/pkg/json"
	"github.com/spf13/pflag"

	genericoptions "github.com/marmotedu/newsline/internal/pkg/options"
	"github.com/marmotedu/newsline/pkg/log"
)

// CleanWatcherOptions defines options for the clean watcher.
type CleanWatcherOptions struct {
	// MaxReserveDays defines how many days an orphan comment is kept before
	// the clean watcher removes it.
	MaxReserveDays int `json:"max-reserve-days" mapstructure:"max-reserve-days"`
}

// WatcherOptions defines options for the watcher jobs.
type WatcherOptions struct {
	Clean CleanWatcherOptions `json:"clean" mapstructure:"clean"`
}

// AddFlags adds flags related to the watcher jobs to the specified FlagSet.
func (o *WatcherOptions) AddFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.Clean.MaxReserveDays, "clean.max-reserve-days", o.Clean.MaxReserveDays,
		"Orphan comments older than this number of days are removed by the clean watcher.")
}

// Options runs a watcher server.
type Options struct {
	RedisOptions       *genericoptions.RedisOptions `json:"redis"                mapstructure:"redis"`
	MySQLOptions       *genericoptions.MySQLOptions `json:"mysql"                mapstructure:"mysql"`
	WatcherOptions     *WatcherOptions              `json:"watcher"              mapstructure:"watcher"`
	HealthCheckPath    string                       `json:"health-check-path"    mapstructure:"health-check-path"`
	HealthCheckAddress string                       `json:"health-check-address" mapstructure:"health-check-address"`
	Log                *log.Options                 `json:"log"                  mapstructure:"log"`
}

// NewOptions creates a new Options object with default parameters.
func NewOptions() *Options {
	s := Options{
		RedisOptions: genericoptions.NewRedisOptions(),
		MySQLOptions: genericoptions.NewMySQLOptions(),
		WatcherOptions: &WatcherOptions{
			Clean: CleanWatcherOptions{
				MaxReserveDays: 7,
			},
		},
		HealthCheckPath:    "healthz",
		HealthCheckAddress: "0.0.0.0:7071",
		Log:                log.NewOptions(),
	}

	return &s
}

// Flags returns flags for a specific APIServer by section name.
func (o *Options) Flags() (fss cliflag.NamedFlagSets) {
	o.RedisOptions.AddFlags(fss.FlagSet("redis"))
	o.MySQLOptions.AddFlags(fss.FlagSet("mysql"))
	o.WatcherOptions.AddFlags(fss.FlagSet("watcher"))
	o.Log.AddFlags(fss.FlagSet("logs"))

	fs := fss.FlagSet("misc")
	fs.StringVar(&o.HealthCheckPath, "health-check-path", o.HealthCheckPath, ""+
		"Specifies liveness health check request path.")

	fs.StringVar(&o.HealthCheckAddress, "health-check-address", o.HealthCheckAddress, ""+
		"Specifies liveness health check bind address.")

	return fss
}

func (o *Options) String() string {
	data, _ := json.Marshal(o)

	return string(data)
}
