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

// SetAdminCounts stores admin override floors for the displayed reaction
// counts, and may raise the view count. Administrators only.
func (a *ArticleController) SetAdminCounts(c *gin.Context) {
	log.L(c).Info("set admin counts function called.")

	var r struct {
		LikeCount    int64  `json:"likeCount"    binding:"min=0"`
		DislikeCount int64  `json:"dislikeCount" binding:"min=0"`
		ViewCount    *int64 `json:"viewCount"`
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

	if caller.IsAdmin == 0 {
		core.WriteResponse(c, errors.WithCode(code.ErrPermissionDenied, "administrators only"), nil)

		return
	}

	article, err := a.srv.Articles().SetAdminCounts(c, c.Param("article"), r.LikeCount, r.DislikeCount, r.ViewCount)
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	core.WriteResponse(c, nil, article)
}
