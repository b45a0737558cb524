// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package user

import (
	"github.com/asaskevich/govalidator"
	"github.com/gin-gonic/gin"
	"github.com/marmotedu/component-base/pkg/auth"
	"github.com/marmotedu/component-base/pkg/core"
	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/errors"

	"github.com/marmotedu/newsline/internal/pkg/code"
	"github.com/marmotedu/newsline/pkg/log"
)

// ChangePasswordRequest defines the ChangePassword request body.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"omitempty" valid:"-"`
	NewPassword string `json:"newPassword" binding:"required"  valid:"required,stringlength(5|128)"`
}

// ChangePassword change the user's password by the secure way.
func (u *UserController) ChangePassword(c *gin.Context) {
	log.L(c).Info("change password function called.")

	var r ChangePasswordRequest

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
		core.WriteResponse(c, errors.WithCode(code.ErrPermissionDenied, "not allowed to change password of %s", name), nil)

		return
	}

	user, err := u.srv.Users().Get(c, name, metav1.GetOptions{})
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	// the owner must prove knowledge of the old password, an admin need not
	if caller.Name == name {
		if err := user.Compare(r.OldPassword); err != nil {
			core.WriteResponse(c, errors.WithCode(code.ErrPasswordIncorrect, err.Error()), nil)

			return
		}
	}

	user.Password, _ = auth.Encrypt(r.NewPassword)
	if err := u.srv.Users().ChangePassword(c, user); err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	core.WriteResponse(c, nil, nil)
}
