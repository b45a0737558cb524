// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package category

import (
	"github.com/gin-gonic/gin"
	"github.com/marmotedu/component-base/pkg/core"
	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/errors"

	"github.com/marmotedu/newsline/internal/pkg/code"
	"github.com/marmotedu/newsline/pkg/log"
)

// Delete removes an empty category. Administrators only.
func (ct *CategoryController) Delete(c *gin.Context) {
	log.L(c).Info("delete category function called.")

	caller, err := ct.currentUser(c)
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	if caller.IsAdmin == 0 {
		core.WriteResponse(c, errors.WithCode(code.ErrPermissionDenied, "only administrators can delete categories"), nil)

		return
	}

	if err := ct.srv.Categories().Delete(c, c.Param("category"), metav1.DeleteOptions{Unscoped: true}); err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	core.WriteResponse(c, nil, nil)
}
