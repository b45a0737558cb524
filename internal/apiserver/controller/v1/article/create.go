// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package article

import (
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/gin-gonic/gin"
	"github.com/marmotedu/component-base/pkg/core"
	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/errors"

	"github.com/marmotedu/newsline/internal/pkg/code"
	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
	"github.com/marmotedu/newsline/pkg/log"
)

// Create publishes a new article under the channel named in the path. Only
// the channel owner or an administrator may publish.
func (a *ArticleController) Create(c *gin.Context) {
	log.L(c).Info("article create function called.")

	var r v1.Article

	if err := c.ShouldBindJSON(&r); err != nil {
		core.WriteResponse(c, errors.WithCode(code.ErrBind, err.Error()), nil)

		return
	}

	if _, err := govalidator.ValidateStruct(r); err != nil {
		core.WriteResponse(c, errors.WithCode(code.ErrValidation, err.Error()), nil)

		return
	}

	caller, err := a.currentUser(c)
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	channelSlug := c.Param("channel")
	channel, err := a.srv.Channels().Get(c, channelSlug, metav1.GetOptions{})
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	if channel.OwnerID != caller.ID && caller.IsAdmin == 0 {
		core.WriteResponse(c, errors.WithCode(code.ErrPermissionDenied, "not allowed to publish in channel %s", channelSlug), nil)

		return
	}

	r.AuthorID = caller.ID
	r.ViewCount = 0
	r.AdminLikeCount = 0
	r.AdminDislikeCount = 0
	if r.Status == v1.ArticleStatusPublished {
		now := time.Now()
		r.PublishedAt = &now
	}

	if err := a.srv.Articles().Create(c, channelSlug, &r, metav1.CreateOptions{}); err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	core.WriteResponse(c, nil, r)
}
