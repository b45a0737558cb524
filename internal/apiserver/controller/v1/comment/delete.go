// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package comment

import (
	"github.com/gin-gonic/gin"
	"github.com/marmotedu/component-base/pkg/core"
	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/errors"

	"github.com/marmotedu/newsline/internal/pkg/code"
	"github.com/marmotedu/newsline/pkg/log"
)

// Delete removes a comment. The author or an administrator may do this.
func (co *CommentController) Delete(c *gin.Context) {
	log.L(c).Info("delete comment function called.")

	caller, err := co.currentUser(c)
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	comment, err := co.srv.Comments().Get(c, c.Param("id"), metav1.GetOptions{})
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	if comment.UserID != caller.ID && caller.IsAdmin == 0 {
		core.WriteResponse(c, errors.WithCode(code.ErrPermissionDenied, "not allowed to delete comment %s", comment.InstanceID), nil)

		return
	}

	if err := co.srv.Comments().Delete(c, comment.InstanceID, metav1.DeleteOptions{Unscoped: true}); err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	core.WriteResponse(c, nil, nil)
}
