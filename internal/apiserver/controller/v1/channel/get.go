// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package channel

import (
	"github.com/gin-gonic/gin"
	"github.com/marmotedu/component-base/pkg/core"
	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"

	"github.com/marmotedu/newsline/pkg/log"
)

// Get get a channel by its slug.
func (ch *ChannelController) Get(c *gin.Context) {
	log.L(c).Info("get channel function called.")

	channel, err := ch.srv.Channels().Get(c, c.Param("channel"), metav1.GetOptions{})
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	core.WriteResponse(c, nil, channel)
}
