// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package load

import (
	redis "github.com/go-redis/redis/v7"
	"github.com/marmotedu/component-base/pkg/json"

	"github.com/marmotedu/newsline/internal/apiserver/cache"
	"github.com/marmotedu/newsline/pkg/log"
)

func handleRedisEvent(v interface{}, handled func(cache.NotificationCommand), reloaded func()) {
	message, ok := v.(*redis.Message)
	if !ok {
		return
	}

	notif := cache.Notification{}
	if err := json.Unmarshal([]byte(message.Payload), &notif); err != nil {
		log.Errorf("Unmarshalling message body failed, malformed: %v", err)

		return
	}

	switch notif.Command {
	case cache.NoticeCategoryChanged, cache.NoticeLocationChanged:
		log.Info("Reloading categories and locations")
		reloadQueue <- reloaded
	default:
		log.Warnf("Unknown notification command: %q", notif.Command)

		return
	}

	if handled != nil {
		handled(notif.Command)
	}
}
