// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package storage

import (
	"errors"
	"time"

	redis "github.com/go-redis/redis/v7"

	"github.com/marmotedu/newsline/pkg/log"
)

func secondsToDuration(seconds int64) time.Duration {
	return time.Duration(seconds) * time.Second
}

// RedisCluster is a storage manager that uses the redis database. All keys are
// namespaced with KeyPrefix.
type RedisCluster struct {
	KeyPrefix string
	HashKeys  bool
}

// Connect will establish a connection this is always true because we are
// dynamically using redis.
func (r *RedisCluster) Connect() bool {
	return true
}

func (r *RedisCluster) singleton() redis.UniversalClient {
	return singleton()
}

func (r *RedisCluster) fixKey(keyName string) string {
	return r.KeyPrefix + keyName
}

// GetAndDeleteSet get and delete a key from redis in one atomic exchange.
func (r *RedisCluster) GetAndDeleteSet(keyName string) []interface{} {
	log.Debugf("Getting raw key set: %s", keyName)
	if !Connected() {
		log.Warn("storage: GetAndDeleteSet failed, redis is down")

		return nil
	}

	fixedKey := r.fixKey(keyName)

	var lrange *redis.StringSliceCmd
	_, err := r.singleton().TxPipelined(func(pipe redis.Pipeliner) error {
		lrange = pipe.LRange(fixedKey, 0, -1)
		pipe.Del(fixedKey)

		return nil
	})
	if err != nil {
		log.Errorf("Multi command failed: %s", err.Error())

		return nil
	}

	vals := lrange.Val()
	result := make([]interface{}, len(vals))
	for i, v := range vals {
		result[i] = v
	}

	log.Debugf("Unpacked vals: %d", len(result))

	return result
}

// AppendToSetPipelined append values to redis pipelined.
func (r *RedisCluster) AppendToSetPipelined(key string, values [][]byte) {
	if len(values) == 0 {
		return
	}

	if !Connected() {
		log.Warn("storage: AppendToSetPipelined failed, redis is down")

		return
	}

	fixedKey := r.fixKey(key)
	client := r.singleton()

	pipe := client.Pipeline()
	for _, val := range values {
		pipe.RPush(fixedKey, val)
	}

	if _, err := pipe.Exec(); err != nil {
		log.Errorf("Error trying to append to set keys: %s", err.Error())
	}
}

// Publish publish a message to the specified channel.
func (r *RedisCluster) Publish(channel, message string) error {
	if !Connected() {
		log.Warn("storage: Publish failed, redis is down")

		return ErrRedisIsDown
	}

	if err := r.singleton().Publish(channel, message).Err(); err != nil {
		log.Errorf("Error trying to publish message: %s", err.Error())

		return err
	}

	return nil
}

// StartPubSubHandler subscribe to the given channel and call the callback for
// every message received. It blocks until the subscription fails.
func (r *RedisCluster) StartPubSubHandler(channel string, callback func(interface{})) error {
	if !Connected() {
		return ErrRedisIsDown
	}

	client := r.singleton()
	if client == nil {
		return errors.New("redis connection failed")
	}

	pubsub := client.Subscribe(channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(); err != nil {
		log.Errorf("Error while receiving pubsub message: %s", err.Error())

		return err
	}

	for msg := range pubsub.Channel() {
		callback(msg)
	}

	return nil
}

// SetExp set expiry on a key.
func (r *RedisCluster) SetExp(keyName string, timeout int64) error {
	if !Connected() {
		return ErrRedisIsDown
	}

	return r.singleton().Expire(r.fixKey(keyName), secondsToDuration(timeout)).Err()
}

// GetListRange gets range of elements of list identified by keyName.
func (r *RedisCluster) GetListRange(keyName string, from, to int64) ([]string, error) {
	if !Connected() {
		return nil, ErrRedisIsDown
	}

	elements, err := r.singleton().LRange(r.fixKey(keyName), from, to).Result()
	if err != nil {
		log.Errorf("LRANGE command failed: %s", err.Error())

		return nil, err
	}

	return elements, nil
}
