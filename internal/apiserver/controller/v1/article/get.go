// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package article

import (
	"github.com/gin-gonic/gin"
	"github.com/marmotedu/component-base/pkg/core"
	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"

	"github.com/marmotedu/newsline/pkg/log"
)

// Get get an article by its slug, enriched with displayed counts and the
// caller's reaction.
func (a *ArticleController) Get(c *gin.Context) {
	log.L(c).Info("get article function called.")

	article, err := a.srv.Articles().Get(c, c.Param("article"), a.viewerID(c), metav1.GetOptions{})
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	core.WriteResponse(c, nil, article)
}
