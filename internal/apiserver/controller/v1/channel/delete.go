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

// Delete removes a channel and everything published under it. Only the owner
// or an administrator may do this.
func (ch *ChannelController) Delete(c *gin.Context) {
	log.L(c).Info("delete channel function called.")

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
		core.WriteResponse(c, errors.WithCode(code.ErrPermissionDenied, "not allowed to delete channel %s", channel.Name), nil)

		return
	}

	if err := ch.srv.Channels().Delete(c, channel.Name, metav1.DeleteOptions{Unscoped: true}); err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	core.WriteResponse(c, nil, nil)
}
