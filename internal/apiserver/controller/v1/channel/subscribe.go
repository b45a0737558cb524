// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package channel

import (
	"github.com/gin-gonic/gin"
	"github.com/marmotedu/component-base/pkg/core"
	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/errors"

	"github.com/marmotedu/newsline/internal/pkg/code"
	"github.com/marmotedu/newsline/pkg/log"
)

// Subscribe adds the caller to the channel's audience.
func (ch *ChannelController) Subscribe(c *gin.Context) {
	log.L(c).Info("subscribe channel function called.")

	caller, err := ch.currentUser(c)
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	if err := ch.srv.Channels().Subscribe(c, c.Param("channel"), caller.ID); err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	core.WriteResponse(c, nil, nil)
}

// Unsubscribe removes the caller from the channel's audience.
func (ch *ChannelController) Unsubscribe(c *gin.Context) {
	log.L(c).Info("unsubscribe channel function called.")

	caller, err := ch.currentUser(c)
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	if err := ch.srv.Channels().Unsubscribe(c, c.Param("channel"), caller.ID); err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	core.WriteResponse(c, nil, nil)
}

// Subscriptions lists the channels the caller subscribed to.
func (ch *ChannelController) Subscriptions(c *gin.Context) {
	log.L(c).Info("list subscriptions function called.")

	var r metav1.ListOptions
	if err := c.ShouldBindQuery(&r); err != nil {
		core.WriteResponse(c, errors.WithCode(code.ErrBind, err.Error()), nil)

		return
	}

	caller, err := ch.currentUser(c)
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	subscriptions, err := ch.srv.Channels().Subscriptions(c, caller.ID, r)
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	core.WriteResponse(c, nil, subscriptions)
}
