// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package analytics

import (
	"fmt"

	"github.com/spf13/pflag"
)

// AnalyticsOptions contains configuration items related to analytics.
type AnalyticsOptions struct {
	PoolSize                int    `json:"pool-size"               mapstructure:"pool-size"`
	RecordsBufferSize       uint64 `json:"records-buffer-size"     mapstructure:"records-buffer-size"`
	FlushInterval           uint64 `json:"flush-interval"          mapstructure:"flush-interval"`
	StorageExpirationTime   int    `json:"storage-expiration-time" mapstructure:"storage-expiration-time"`
	Enable                  bool   `json:"enable"                  mapstructure:"enable"`
	EnableDetailedRecording bool   `json:"enable-detailed-recording" mapstructure:"enable-detailed-recording"`
}

// NewAnalyticsOptions creates an AnalyticsOptions object with default
// parameters.
func NewAnalyticsOptions() *AnalyticsOptions {
	return &AnalyticsOptions{
		Enable:                  true,
		PoolSize:                50,
		RecordsBufferSize:       1000,
		FlushInterval:           200,
		EnableDetailedRecording: true,
		StorageExpirationTime:   24 * 60 * 60,
	}
}

// Validate verifies flags passed to AnalyticsOptions.
func (o *AnalyticsOptions) Validate() []error {
	if o == nil {
		return nil
	}

	errs := []error{}

	if o.Enable && (o.FlushInterval < 1 || o.FlushInterval > 1000) {
		errs = append(errs, fmt.Errorf("--analytics.flush-interval %v must be between 1 and 1000", o.FlushInterval))
	}

	return errs
}

// AddFlags adds flags related to analytics storage for a specific server to
// the specified FlagSet.
func (o *AnalyticsOptions) AddFlags(fs *pflag.FlagSet) {
	if fs == nil {
		return
	}

	fs.BoolVar(&o.Enable, "analytics.enable", o.Enable, ""+
		"This sets the newsline-apiserver to record view analytics data.")

	fs.IntVar(&o.PoolSize, "analytics.pool-size", o.PoolSize, ""+
		"Specify number of pool workers.")

	fs.Uint64Var(&o.RecordsBufferSize, "analytics.records-buffer-size", o.RecordsBufferSize, ""+
		"Specifies total maximum number of records queued between workers.")

	fs.Uint64Var(&o.FlushInterval, "analytics.flush-interval", o.FlushInterval, ""+
		"Specify the maximum time in milliseconds records can stay buffered before being sent to redis.")

	fs.IntVar(&o.StorageExpirationTime, "analytics.storage-expiration-time", o.StorageExpirationTime, ""+
		"Set to a value larger than the pump's purge delay to allow plenty of time for pump to pull data from redis.")

	fs.BoolVar(&o.EnableDetailedRecording, "analytics.enable-detailed-recording", o.EnableDetailedRecording, ""+
		"Enable detailed analytics of the client identity for every counted view.")
}
