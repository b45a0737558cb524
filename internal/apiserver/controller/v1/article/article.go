// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package article implements the article resource handlers, including view
// counting, reactions and the admin count override.
package article

import (
	"fmt"

	"github.com/gin-gonic/gin"
	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/errors"

	"github.com/marmotedu/newsline/internal/apiserver/store"
	"github.com/marmotedu/newsline/internal/pkg/code"
	"github.com/marmotedu/newsline/internal/pkg/middleware"
	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"

	srvv1 "github.com/marmotedu/newsline/internal/apiserver/service/v1"
)

// ArticleController create an article handler used to handle request for
// article resource.
type ArticleController struct {
	srv srvv1.Service
}

// NewArticleController creates an article handler.
func NewArticleController(store store.Factory) *ArticleController {
	return &ArticleController{
		srv: srvv1.NewService(store),
	}
}

func (a *ArticleController) currentUser(c *gin.Context) (*v1.User, error) {
	username := c.GetString(middleware.UsernameKey)
	if username == "" {
		return nil, errors.WithCode(code.ErrTokenInvalid, "no identity in request context")
	}

	return a.srv.Users().Get(c, username, metav1.GetOptions{})
}

// viewerID returns the caller's user id, or the admin sentinel when the
// request carries no identity.
func (a *ArticleController) viewerID(c *gin.Context) uint64 {
	user, err := a.currentUser(c)
	if err != nil {
		return v1.AdminUserID
	}

	return user.ID
}

// clientID derives the view counting identity: the user id for authenticated
// callers, the remote address otherwise.
func (a *ArticleController) clientID(c *gin.Context) string {
	if user, err := a.currentUser(c); err == nil {
		return fmt.Sprintf("user-%d", user.ID)
	}

	return "ip-" + c.ClientIP()
}
