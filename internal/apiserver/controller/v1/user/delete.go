// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package user

import (
	"github.com/gin-gonic/gin"
	"github.com/marmotedu/component-base/pkg/core"
	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/errors"

	"github.com/marmotedu/newsline/internal/pkg/code"
	"github.com/marmotedu/newsline/pkg/log"
)

// Delete deletes an user account, along with its subscriptions and reactions.
// Only the user itself or an administrator may do this.
func (u *UserController) Delete(c *gin.Context) {
	log.L(c).Info("delete user function called.")

	caller, err := u.currentUser(c)
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	name := c.Param("name")
	if caller.Name != name && caller.IsAdmin == 0 {
		core.WriteResponse(c, errors.WithCode(code.ErrPermissionDenied, "not allowed to delete user %s", name), nil)

		return
	}

	if err := u.srv.Users().Delete(c, name, metav1.DeleteOptions{Unscoped: true}); err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	core.WriteResponse(c, nil, nil)
}
