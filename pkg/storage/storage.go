// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package storage provides a redis backed key/value, set and pub/sub handler
// shared by the newsline components.
package storage

import (
	"context"
	"crypto/tls"
	"errors"
	"strconv"
	"sync/atomic"
	"time"

	redis "github.com/go-redis/redis/v7"

	"github.com/marmotedu/newsline/pkg/log"
)

// Config defines options for redis cluster.
type Config struct {
	Host                  string
	Port                  int
	Addrs                 []string
	MasterName            string
	Username              string
	Password              string
	Database              int
	MaxIdle               int
	MaxActive             int
	Timeout               int
	EnableCluster         bool
	UseSSL                bool
	SSLInsecureSkipVerify bool
}

// ErrRedisIsDown is returned when we can't communicate with redis.
var ErrRedisIsDown = errors.New("storage: Redis is either down or was not configured")

// AnalyticsHandler defines the interface of an analytics back-end.
type AnalyticsHandler interface {
	Connect() bool
	AppendToSetPipelined(string, [][]byte)
	GetAndDeleteSet(string) []interface{}
	SetExp(string, int64) error
}

var (
	singlePool   atomic.Value
	redisUp      atomic.Value
	disableRedis atomic.Value
)

// DisableRedis very handy when testsing it allows to dynamically enable/disable talking with redis server.
func DisableRedis(ok bool) {
	if ok {
		redisUp.Store(false)
		disableRedis.Store(true)

		return
	}
	disableRedis.Store(false)
	redisUp.Store(true)
}

func shouldConnect() bool {
	if v := disableRedis.Load(); v != nil {
		return !v.(bool)
	}

	return true
}

// Connected returns true if we are connected to redis.
func Connected() bool {
	if v := redisUp.Load(); v != nil {
		return v.(bool)
	}

	return false
}

func singleton() redis.UniversalClient {
	if v := singlePool.Load(); v != nil {
		return v.(redis.UniversalClient)
	}

	return nil
}

func connectSingleton(config *Config) bool {
	if singleton() == nil {
		log.Debug("Connecting to redis cluster")
		singlePool.Store(NewRedisClusterPool(config))

		return true
	}

	return true
}

// ConnectToRedis starts a go routine that periodically tries to connect to
// redis. It is the caller's responsibility to cancel ctx on shutdown.
func ConnectToRedis(ctx context.Context, config *Config) {
	tick := time.NewTicker(time.Second)
	defer tick.Stop()

	c := RedisCluster{}

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			if !shouldConnect() {
				continue
			}

			if !connectSingleton(config) {
				redisUp.Store(false)

				continue
			}

			if !clusterConnectionIsOpen(c) {
				redisUp.Store(false)

				continue
			}

			redisUp.Store(true)
		}
	}
}

func clusterConnectionIsOpen(cluster RedisCluster) bool {
	client := singleton()
	if client == nil {
		return false
	}

	testKey := "redis-test-" + time.Now().Format(time.RFC3339Nano)
	if err := client.Set(testKey, "test", time.Second).Err(); err != nil {
		log.Warnf("Error trying to set test key: %s", err.Error())

		return false
	}
	if _, err := client.Get(testKey).Result(); err != nil {
		log.Warnf("Error trying to get test key: %s", err.Error())

		return false
	}

	return true
}

// NewRedisClusterPool creates a redis cluster pool from the given
// configuration.
func NewRedisClusterPool(config *Config) redis.UniversalClient {
	log.Debug("Creating new Redis connection pool")

	// poolSize applies per cluster node and not for the whole cluster.
	poolSize := 500
	if config.MaxActive > 0 {
		poolSize = config.MaxActive
	}

	timeout := 5 * time.Second
	if config.Timeout > 0 {
		timeout = time.Duration(config.Timeout) * time.Second
	}

	var tlsConfig *tls.Config
	if config.UseSSL {
		tlsConfig = &tls.Config{
			InsecureSkipVerify: config.SSLInsecureSkipVerify, //nolint: gosec // operator's choice.
		}
	}

	opts := &redis.UniversalOptions{
		Addrs:        getRedisAddrs(config),
		MasterName:   config.MasterName,
		Password:     config.Password,
		DB:           config.Database,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		IdleTimeout:  240 * timeout,
		PoolSize:     poolSize,
		TLSConfig:    tlsConfig,
	}

	if opts.MasterName != "" {
		log.Info("--> [REDIS] Creating sentinel-backed failover client")

		return redis.NewFailoverClient(opts.Failover())
	}

	if config.EnableCluster {
		log.Info("--> [REDIS] Creating cluster client")

		return redis.NewClusterClient(opts.Cluster())
	}

	log.Info("--> [REDIS] Creating single-node client")

	return redis.NewClient(opts.Simple())
}

func getRedisAddrs(config *Config) (addrs []string) {
	if len(config.Addrs) != 0 {
		addrs = config.Addrs
	}

	if len(addrs) == 0 && config.Port != 0 {
		addr := config.Host + ":" + strconv.Itoa(config.Port)
		addrs = append(addrs, addr)
	}

	return addrs
}
