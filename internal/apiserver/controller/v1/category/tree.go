// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package category

import (
	"github.com/gin-gonic/gin"
	"github.com/marmotedu/component-base/pkg/core"

	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
	"github.com/marmotedu/newsline/pkg/log"
)

// Tree returns all categories nested under their parents, roots first.
func (ct *CategoryController) Tree(c *gin.Context) {
	log.L(c).Info("category tree function called.")

	roots, err := ct.srv.Categories().Tree(c)
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	core.WriteResponse(c, nil, v1.CategoryList{Items: roots})
}
