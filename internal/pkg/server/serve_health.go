// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marmotedu/newsline/pkg/log"
)

// ServeHealthCheck runs a http server used to provide a api to check pump
// health status.
func ServeHealthCheck(healthPath string, healthAddress string) {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.GET("/"+healthPath, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	server := &http.Server{
		Addr:         healthAddress,
		Handler:      engine,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Error serving health check endpoint: %s", err.Error())
	}
}
