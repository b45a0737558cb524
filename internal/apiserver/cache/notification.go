// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package cache

// RedisPubSubChannel is the redis channel carrying cluster cache
// notifications.
const RedisPubSubChannel = "newsline.cluster.notifications"

// NotificationCommand identifies the mutation a notification reports.
type NotificationCommand string

// Cluster notification commands.
const (
	NoticeCategoryChanged NotificationCommand = "CategoryChanged"
	NoticeLocationChanged NotificationCommand = "LocationChanged"
)

// Notification is a message sent to all cluster members when a cached
// resource changes.
type Notification struct {
	Command NotificationCommand `json:"command"`
	Payload string              `json:"payload"`
}
