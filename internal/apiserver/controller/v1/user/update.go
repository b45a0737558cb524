// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package user

import (
	"github.com/asaskevich/govalidator"
	"github.com/gin-gonic/gin"
	"github.com/marmotedu/component-base/pkg/core"
	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/errors"

	"github.com/marmotedu/newsline/internal/pkg/code"
	"github.com/marmotedu/newsline/pkg/log"
)

// Update updates the user's nickname and email. Only the user itself or an
// administrator may do this.
func (u *UserController) Update(c *gin.Context) {
	log.L(c).Info("update user function called.")

	var r struct {
		Nickname string `json:"nickname" valid:"required,stringlength(1|30)"`
		Email    string `json:"email"    valid:"required,email"`
	}

	if err := c.ShouldBindJSON(&r); err != nil {
		core.WriteResponse(c, errors.WithCode(code.ErrBind, err.Error()), nil)

		return
	}

	if _, err := govalidator.ValidateStruct(r); err != nil {
		core.WriteResponse(c, errors.WithCode(code.ErrValidation, err.Error()), nil)

		return
	}

	caller, err := u.currentUser(c)
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	name := c.Param("name")
	if caller.Name != name && caller.IsAdmin == 0 {
		core.WriteResponse(c, errors.WithCode(code.ErrPermissionDenied, "not allowed to update user %s", name), nil)

		return
	}

	user, err := u.srv.Users().Get(c, name, metav1.GetOptions{})
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	user.Nickname = r.Nickname
	user.Email = r.Email

	if err := u.srv.Users().Update(c, user, metav1.UpdateOptions{}); err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	user.Password = ""

	core.WriteResponse(c, nil, user)
}
