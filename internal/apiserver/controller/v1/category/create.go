// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package category

import (
	"github.com/asaskevich/govalidator"
	"github.com/gin-gonic/gin"
	"github.com/marmotedu/component-base/pkg/core"
	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/errors"

	"github.com/marmotedu/newsline/internal/pkg/code"
	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
	"github.com/marmotedu/newsline/pkg/log"
)

// Create adds a new category. Administrators only.
func (ct *CategoryController) Create(c *gin.Context) {
	log.L(c).Info("create category function called.")

	caller, err := ct.currentUser(c)
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	if caller.IsAdmin == 0 {
		core.WriteResponse(c, errors.WithCode(code.ErrPermissionDenied, "only administrators can create categories"), nil)

		return
	}

	var r v1.Category

	if err := c.ShouldBindJSON(&r); err != nil {
		core.WriteResponse(c, errors.WithCode(code.ErrBind, err.Error()), nil)

		return
	}

	if _, err := govalidator.ValidateStruct(r); err != nil {
		core.WriteResponse(c, errors.WithCode(code.ErrValidation, err.Error()), nil)

		return
	}

	if err := ct.srv.Categories().Create(c, &r, metav1.CreateOptions{}); err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	core.WriteResponse(c, nil, r)
}
