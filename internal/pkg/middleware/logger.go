// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marmotedu/newsline/pkg/log"
)

// Logger instances a Logger middleware that will write the access logs through
// the structured log package.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Start timer
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		// Process request
		c.Next()

		latency := time.Since(start)
		if latency > time.Minute {
			latency = latency.Truncate(time.Second)
		}

		if raw != "" {
			path = path + "?" + raw
		}

		log.L(c).Info(fmt.Sprintf("%3d | %13v | %15s | %-7s %#v | %s",
			c.Writer.Status(),
			latency,
			c.ClientIP(),
			c.Request.Method,
			path,
			c.Errors.ByType(gin.ErrorTypePrivate).String(),
		))
	}
}
