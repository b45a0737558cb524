// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package storage defines the interface of the analytics storage the pump
// drains.
package storage

// AnalyticsKeyName defines the key of the redis set holding buffered view
// records. Must match the key the apiserver appends to.
const AnalyticsKeyName = "newsline-system-analytics"

// Defines a couple of constants of storage type.
const (
	RedisKeyPrefix = "analytics-"
)

// AnalyticsStorage defines an analytics storage interface.
type AnalyticsStorage interface {
	Init(config interface{}) error
	GetName() string
	Connect() bool
	GetAndDeleteSet(setName string) []interface{}
}
