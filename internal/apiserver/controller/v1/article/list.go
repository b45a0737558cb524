// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package article

import (
	"github.com/gin-gonic/gin"
	"github.com/marmotedu/component-base/pkg/core"
	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/errors"

	"github.com/marmotedu/newsline/internal/apiserver/store"
	"github.com/marmotedu/newsline/internal/pkg/code"
	"github.com/marmotedu/newsline/pkg/log"
)

// List list articles, optionally narrowed by channel, category or location.
func (a *ArticleController) List(c *gin.Context) {
	log.L(c).Info("list article function called.")

	var r struct {
		metav1.ListOptions
		Channel  string `form:"channel"`
		Category string `form:"category"`
		Location string `form:"location"`
	}
	if err := c.ShouldBindQuery(&r); err != nil {
		core.WriteResponse(c, errors.WithCode(code.ErrBind, err.Error()), nil)

		return
	}

	var filter store.ArticleFilter

	if r.Channel != "" {
		channel, err := a.srv.Channels().Get(c, r.Channel, metav1.GetOptions{})
		if err != nil {
			core.WriteResponse(c, err, nil)

			return
		}
		filter.ChannelID = channel.ID
	}

	if r.Category != "" {
		category, err := a.srv.Categories().Get(c, r.Category, metav1.GetOptions{})
		if err != nil {
			core.WriteResponse(c, err, nil)

			return
		}
		filter.CategoryID = category.ID
	}

	if r.Location != "" {
		location, err := a.srv.Locations().Get(c, r.Location, metav1.GetOptions{})
		if err != nil {
			core.WriteResponse(c, err, nil)

			return
		}
		filter.LocationID = location.ID
	}

	articles, err := a.srv.Articles().List(c, filter, r.ListOptions)
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	core.WriteResponse(c, nil, articles)
}
