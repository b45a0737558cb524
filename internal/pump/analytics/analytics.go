// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package analytics defines the view record which is consumed from redis and
// handed to the configured pumps.
package analytics

import "time"

// AnalyticsRecord encodes a single article view event. The fields must stay
// compatible with the records produced by the apiserver.
type AnalyticsRecord struct {
	TimeStamp int64     `json:"timestamp"`
	Slug      string    `json:"slug"`
	ClientID  string    `json:"clientId"`
	Counted   bool      `json:"counted"`
	ExpireAt  time.Time `json:"expireAt"   bson:"expireAt"`
}

// SetExpiry set expiration time to the record.
func (a *AnalyticsRecord) SetExpiry(expiresInSeconds int64) {
	expiry := time.Duration(expiresInSeconds) * time.Second
	if expiresInSeconds == 0 {
		// Expiry is set to 100 years
		expiry = 24 * 365 * 100 * time.Hour
	}

	t := time.Now()
	t2 := t.Add(expiry)
	a.ExpireAt = t2
}
