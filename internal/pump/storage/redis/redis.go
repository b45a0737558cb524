// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package redis implements the AnalyticsStorage interface with a redis
// backend, it is the upstream the pump drains.
package redis

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	redis "github.com/go-redis/redis/v8"
	"github.com/mitchellh/mapstructure"

	"github.com/marmotedu/newsline/internal/pump/storage"
	"github.com/marmotedu/newsline/pkg/log"
)

var redisClusterSingleton redis.UniversalClient

// RedisClusterStorageManager is a storage manager that uses the redis database.
type RedisClusterStorageManager struct {
	db        redis.UniversalClient
	KeyPrefix string
	HashKeys  bool
	Config    RedisStorageConfig
}

// RedisStorageConfig defines redis storage usable config.
type RedisStorageConfig struct {
	Host                  string   `mapstructure:"host"`
	Port                  int      `mapstructure:"port"`
	Addrs                 []string `mapstructure:"addrs"`
	MasterName            string   `mapstructure:"master-name"`
	Username              string   `mapstructure:"username"`
	Password              string   `mapstructure:"password"`
	Database              int      `mapstructure:"database"`
	Timeout               int      `mapstructure:"timeout"`
	MaxIdle               int      `mapstructure:"optimisation-max-idle"`
	MaxActive             int      `mapstructure:"optimisation-max-active"`
	EnableCluster         bool     `mapstructure:"enable-cluster"`
	UseSSL                bool     `mapstructure:"use-ssl"`
	SSLInsecureSkipVerify bool     `mapstructure:"ssl-insecure-skip-verify"`
}

// NewRedisClusterPool returns a redis cluster client.
func NewRedisClusterPool(forceReconnect bool, config RedisStorageConfig) redis.UniversalClient {
	if !forceReconnect && redisClusterSingleton != nil {
		log.Debug("Redis pool already INITIALIZED")

		return redisClusterSingleton
	}

	log.Debug("Creating new Redis connection pool")

	maxActive := 500
	if config.MaxActive > 0 {
		maxActive = config.MaxActive
	}

	timeout := 5 * time.Second
	if config.Timeout > 0 {
		timeout = time.Duration(config.Timeout) * time.Second
	}

	var tlsConfig *tls.Config
	if config.UseSSL {
		tlsConfig = &tls.Config{
			InsecureSkipVerify: config.SSLInsecureSkipVerify,
		}
	}

	var client redis.UniversalClient
	opts := &redis.UniversalOptions{
		Addrs:        getRedisAddrs(config),
		MasterName:   config.MasterName,
		Username:     config.Username,
		Password:     config.Password,
		DB:           config.Database,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		IdleTimeout:  240 * timeout,
		PoolSize:     maxActive,
		TLSConfig:    tlsConfig,
	}

	if opts.MasterName != "" {
		log.Info("--> [REDIS] Creating sentinel-backed failover client")
		client = redis.NewFailoverClient(opts.Failover())
	} else if config.EnableCluster {
		log.Info("--> [REDIS] Creating cluster client")
		client = redis.NewClusterClient(opts.Cluster())
	} else {
		log.Info("--> [REDIS] Creating single-node client")
		client = redis.NewClient(opts.Simple())
	}

	redisClusterSingleton = client

	return client
}

func getRedisAddrs(config RedisStorageConfig) (addrs []string) {
	if len(config.Addrs) != 0 {
		addrs = config.Addrs
	}

	if len(addrs) == 0 && config.Port != 0 {
		addr := config.Host + ":" + fmt.Sprint(config.Port)
		addrs = append(addrs, addr)
	}

	return addrs
}

// GetName returns the redis cluster storage manager name.
func (r *RedisClusterStorageManager) GetName() string {
	return "redis"
}

// Init initialize the redis cluster storage manager.
func (r *RedisClusterStorageManager) Init(config interface{}) error {
	r.Config = RedisStorageConfig{}
	err := mapstructure.Decode(config, &r.Config)
	if err != nil {
		log.Fatalf("Failed to decode configuration: %s", err.Error())
	}

	r.KeyPrefix = storage.RedisKeyPrefix

	return nil
}

// Connect will establish a connection to the r.db.
func (r *RedisClusterStorageManager) Connect() bool {
	if r.db == nil {
		log.Debug("Connecting to redis cluster")
		r.db = NewRedisClusterPool(false, r.Config)

		if err := retry.Do(
			func() error {
				return r.db.Ping(context.Background()).Err()
			},
			retry.Attempts(3),
			retry.Delay(time.Second),
		); err != nil {
			log.Warnf("Redis not reachable yet: %s", err.Error())
		}

		return true
	}

	// Redis is the shared storage object, so we will check mem cache only
	log.Debug("Storage Engine already initialized...")

	// Reset it just in case
	r.db = redisClusterSingleton

	return true
}

func (r *RedisClusterStorageManager) hashKey(in string) string {
	return in
}

func (r *RedisClusterStorageManager) fixKey(keyName string) string {
	setKeyName := r.KeyPrefix + r.hashKey(keyName)

	log.Debugf("Input key was: %s", setKeyName)

	return setKeyName
}

// GetAndDeleteSet get and delete key from redis.
func (r *RedisClusterStorageManager) GetAndDeleteSet(keyName string) []interface{} {
	log.Debugf("Getting raw key set: %s", keyName)
	if r.db == nil {
		log.Warn("Connection dropped, connecting..")
		r.Connect()

		return r.GetAndDeleteSet(keyName)
	}

	log.Debugf("keyName is: %s", keyName)
	fixedKey := r.fixKey(keyName)
	log.Debugf("Fixed keyname is: %s", fixedKey)

	var lrange *redis.StringSliceCmd
	_, err := r.db.TxPipelined(context.Background(), func(pipe redis.Pipeliner) error {
		lrange = pipe.LRange(context.Background(), fixedKey, 0, -1)
		pipe.Del(context.Background(), fixedKey)

		return nil
	})
	if err != nil {
		log.Errorf("Multi command failed: %s", err.Error())

		return nil
	}

	vals := lrange.Val()

	log.Debugf("Analytics returned: %d", len(vals))
	if len(vals) == 0 {
		return nil
	}

	results := make([]interface{}, len(vals))
	for i, v := range vals {
		results[i] = v
	}

	log.Debugf("Unpacked vals: %d", len(results))

	return results
}
