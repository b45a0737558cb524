// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package article

import (
	"github.com/gin-gonic/gin"
	"github.com/marmotedu/component-base/pkg/core"
	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/errors"

	"github.com/marmotedu/newsline/internal/pkg/code"
	"github.com/marmotedu/newsline/pkg/log"
)

// Delete removes an article together with its comments, reactions and view
// marks. Only the author or an administrator may do this.
func (a *ArticleController) Delete(c *gin.Context) {
	log.L(c).Info("delete article function called.")

	caller, err := a.currentUser(c)
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	article, err := a.srv.Articles().Get(c, c.Param("article"), caller.ID, metav1.GetOptions{})
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	if article.AuthorID != caller.ID && caller.IsAdmin == 0 {
		core.WriteResponse(c, errors.WithCode(code.ErrPermissionDenied, "not allowed to delete article %s", article.Name), nil)

		return
	}

	if err := a.srv.Articles().Delete(c, article.Name, metav1.DeleteOptions{Unscoped: true}); err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	core.WriteResponse(c, nil, nil)
}
