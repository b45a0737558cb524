// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package comment implements the comment resource handlers.
package comment

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

// CommentController create a comment handler used to handle request for
// comment resource.
type CommentController struct {
	srv srvv1.Service
}

// NewCommentController creates a comment handler.
func NewCommentController(store store.Factory) *CommentController {
	return &CommentController{
		srv: srvv1.NewService(store),
	}
}

func (co *CommentController) currentUser(c *gin.Context) (*v1.User, error) {
	username := c.GetString(middleware.UsernameKey)
	if username == "" {
		return nil, errors.WithCode(code.ErrTokenInvalid, "no identity in request context")
	}

	return co.srv.Users().Get(c, username, metav1.GetOptions{})
}
