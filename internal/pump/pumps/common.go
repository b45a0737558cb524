// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package pumps

import "github.com/marmotedu/newsline/internal/pump/analytics"

// CommonPumpConfig defines common options used by all persistent store, like
// mysql, csv and prometheus.
type CommonPumpConfig struct {
	filters               analytics.AnalyticsFilters
	timeout               int
	OmitDetailedRecording bool
}

// SetFilters set attribute `filters` for CommonPumpConfig.
func (p *CommonPumpConfig) SetFilters(filters analytics.AnalyticsFilters) {
	p.filters = filters
}

// GetFilters get attribute `filters` for CommonPumpConfig.
func (p *CommonPumpConfig) GetFilters() analytics.AnalyticsFilters {
	return p.filters
}

// SetTimeout set attribute `timeout` for CommonPumpConfig.
func (p *CommonPumpConfig) SetTimeout(timeout int) {
	p.timeout = timeout
}

// GetTimeout get attribute `timeout` for CommonPumpConfig.
func (p *CommonPumpConfig) GetTimeout() int {
	return p.timeout
}

// SetOmitDetailedRecording set attribute `OmitDetailedRecording` for CommonPumpConfig.
func (p *CommonPumpConfig) SetOmitDetailedRecording(omitDetailedRecording bool) {
	p.OmitDetailedRecording = omitDetailedRecording
}

// GetOmitDetailedRecording get attribute `OmitDetailedRecording` for CommonPumpConfig.
func (p *CommonPumpConfig) GetOmitDetailedRecording() bool {
	return p.OmitDetailedRecording
}
