// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package article

import (
	"github.com/gin-gonic/gin"
	"github.com/marmotedu/component-base/pkg/core"
	"github.com/marmotedu/errors"

	"github.com/marmotedu/newsline/internal/pkg/code"
	"github.com/marmotedu/newsline/pkg/log"
)

// SetReaction toggles the caller's like or dislike on an article.
func (a *ArticleController) SetReaction(c *gin.Context) {
	log.L(c).Info("set reaction function called.")

	var r struct {
		IsLike *bool `json:"isLike" binding:"required"`
	}

	if err := c.ShouldBindJSON(&r); err != nil {
		core.WriteResponse(c, errors.WithCode(code.ErrBind, err.Error()), nil)

		return
	}

	caller, err := a.currentUser(c)
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	summary, err := a.srv.Articles().SetReaction(c, c.Param("article"), caller.ID, *r.IsLike)
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	core.WriteResponse(c, nil, summary)
}

// GetReactions returns the displayed counts of an article together with the
// caller's own reaction.
func (a *ArticleController) GetReactions(c *gin.Context) {
	log.L(c).Info("get reactions function called.")

	summary, err := a.srv.Articles().GetReactions(c, c.Param("article"), a.viewerID(c))
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	core.WriteResponse(c, nil, summary)
}
