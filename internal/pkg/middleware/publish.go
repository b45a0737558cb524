// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/marmotedu/component-base/pkg/json"

	"github.com/marmotedu/newsline/internal/apiserver/cache"
	"github.com/marmotedu/newsline/pkg/log"
	"github.com/marmotedu/newsline/pkg/storage"
)

// Publish publish a redis event to specified redis channel when some taxonomy
// changed, so that peer instances can drop their cached forests.
func Publish() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() != http.StatusOK {
			log.L(c).Debugf("request failed with http status code `%d`, ignore publish message", c.Writer.Status())

			return
		}

		var resource string

		pathSplit := strings.Split(c.Request.URL.Path, "/")
		if len(pathSplit) > 2 {
			resource = pathSplit[2]
		}

		method := c.Request.Method

		switch resource {
		case "categories":
			notify(c, method, cache.NoticeCategoryChanged)
		case "locations":
			notify(c, method, cache.NoticeLocationChanged)
		default:
		}
	}
}

func notify(ctx context.Context, method string, command cache.NotificationCommand) {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch:
		redisStore := &storage.RedisCluster{}
		message, _ := json.Marshal(cache.Notification{Command: command})

		if err := redisStore.Publish(cache.RedisPubSubChannel, string(message)); err != nil {
			log.L(ctx).Errorw("publish redis message failed", "error", err.Error())
		}
		log.L(ctx).Debugw("publish redis message", "method", method, "command", command)
	default:
	}
}
