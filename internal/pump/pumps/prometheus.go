// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package pumps

import (
	"context"
	"net/http"

	"github.com/mitchellh/mapstructure"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/marmotedu/newsline/internal/pump/analytics"
	"github.com/marmotedu/newsline/pkg/log"
)

// PrometheusPump defines a prometheus pump with prometheus specific options and common options.
type PrometheusPump struct {
	conf *PrometheusConf
	// Per article view counter
	TotalViews *prometheus.CounterVec
	// Counted vs deduplicated views
	CountedViews *prometheus.CounterVec

	CommonPumpConfig
}

// PrometheusConf defines prometheus specific options.
type PrometheusConf struct {
	Addr string `mapstructure:"listen_address"`
	Path string `mapstructure:"path"`
}

// New create a prometheus pump instance.
func (p *PrometheusPump) New() Pump {
	newPump := PrometheusPump{}

	newPump.TotalViews = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsline_article_views_total",
			Help: "View events per article slug.",
		},
		[]string{"slug"},
	)
	newPump.CountedViews = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsline_article_views_counted_total",
			Help: "View events that incremented the public counter, per article slug.",
		},
		[]string{"slug"},
	)

	prometheus.MustRegister(newPump.TotalViews)
	prometheus.MustRegister(newPump.CountedViews)

	return &newPump
}

// GetName returns the prometheus pump name.
func (p *PrometheusPump) GetName() string {
	return "Prometheus Pump"
}

// Init initialize the prometheus pump instance.
func (p *PrometheusPump) Init(conf interface{}) error {
	p.conf = &PrometheusConf{}
	err := mapstructure.Decode(conf, &p.conf)
	if err != nil {
		log.Fatalf("Failed to decode configuration: %s", err.Error())
	}

	if p.conf.Path == "" {
		p.conf.Path = "/metrics"
	}

	if p.conf.Addr == "" {
		return errEmptyAddr
	}

	log.Infof("Starting prometheus listener on: %s", p.conf.Addr)

	http.Handle(p.conf.Path, promhttp.Handler())

	go func() {
		log.Fatal(http.ListenAndServe(p.conf.Addr, nil).Error())
	}()

	return nil
}

// WriteData increment the counters with the given view records.
func (p *PrometheusPump) WriteData(ctx context.Context, data []interface{}) error {
	log.Debugf("Writing %d records", len(data))

	for _, item := range data {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		record, ok := item.(analytics.AnalyticsRecord)
		if !ok {
			continue
		}

		p.TotalViews.WithLabelValues(record.Slug).Inc()
		if record.Counted {
			p.CountedViews.WithLabelValues(record.Slug).Inc()
		}
	}

	return nil
}
