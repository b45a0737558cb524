// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package channel

import (
	"github.com/asaskevich/govalidator"
	"github.com/gin-gonic/gin"
	"github.com/marmotedu/component-base/pkg/core"
	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/errors"

	"github.com/marmotedu/newsline/internal/pkg/code"
	"github.com/marmotedu/newsline/pkg/log"
)

// Update updates a channel's presentation fields. Only the owner or an
// administrator may do this.
func (ch *ChannelController) Update(c *gin.Context) {
	log.L(c).Info("update channel function called.")

	var r struct {
		Title       string `json:"title"       valid:"required,stringlength(1|100)"`
		Description string `json:"description" valid:"-"`
		ImageURL    string `json:"imageUrl"    valid:"-"`
	}

	if err := c.ShouldBindJSON(&r); err != nil {
		core.WriteResponse(c, errors.WithCode(code.ErrBind, err.Error()), nil)

		return
	}

	if _, err := govalidator.ValidateStruct(r); err != nil {
		core.WriteResponse(c, errors.WithCode(code.ErrValidation, err.Error()), nil)

		return
	}

	caller, err := ch.currentUser(c)
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	channel, err := ch.srv.Channels().Get(c, c.Param("channel"), metav1.GetOptions{})
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	if channel.OwnerID != caller.ID && caller.IsAdmin == 0 {
		core.WriteResponse(c, errors.WithCode(code.ErrPermissionDenied, "not allowed to update channel %s", channel.Name), nil)

		return
	}

	channel.Title = r.Title
	channel.Description = r.Description
	channel.ImageURL = r.ImageURL

	if err := ch.srv.Channels().Update(c, channel, metav1.UpdateOptions{}); err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	core.WriteResponse(c, nil, channel)
}
