// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package channel implements the channel resource handlers, including the
// subscription endpoints.
package channel

import (
	"github.com/gin-gonic/gin"
	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/errors"

	"github.com/marmotedu/newsline/internal/apiserver/store"
	"github.com/marmotedu/newsline/internal/pkg/code"
	"github.com/marmotedu/newsline/internal/pkg/middleware"
	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"

	srvv1 "github.com/marmotedu/newsline/internal/apiserver/service/v1"
)

// ChannelController create a channel handler used to handle request for
// channel resource.
type ChannelController struct {
	srv srvv1.Service
}

// NewChannelController creates a channel handler.
func NewChannelController(store store.Factory) *ChannelController {
	return &ChannelController{
		srv: srvv1.NewService(store),
	}
}

func (ch *ChannelController) currentUser(c *gin.Context) (*v1.User, error) {
	username := c.GetString(middleware.UsernameKey)
	if username == "" {
		return nil, errors.WithCode(code.ErrTokenInvalid, "no identity in request context")
	}

	return ch.srv.Users().Get(c, username, metav1.GetOptions{})
}
