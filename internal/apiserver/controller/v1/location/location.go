// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package location implements the location resource handlers. The tree
// endpoint is public, mutations are restricted to administrators.
package location

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

// LocationController create a location handler used to handle request for
// location resource.
type LocationController struct {
	srv srvv1.Service
}

// NewLocationController creates a location handler.
func NewLocationController(store store.Factory) *LocationController {
	return &LocationController{
		srv: srvv1.NewService(store),
	}
}

func (lo *LocationController) currentUser(c *gin.Context) (*v1.User, error) {
	username := c.GetString(middleware.UsernameKey)
	if username == "" {
		return nil, errors.WithCode(code.ErrTokenInvalid, "no identity in request context")
	}

	return lo.srv.Users().Get(c, username, metav1.GetOptions{})
}
