// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package article

import (
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/gin-gonic/gin"
	"github.com/marmotedu/component-base/pkg/core"
	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/errors"

	"github.com/marmotedu/newsline/internal/pkg/code"
	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
	"github.com/marmotedu/newsline/pkg/log"
)

// Update rewrites an article's content fields. Only the author or an
// administrator may do this. Counters are never touched here.
func (a *ArticleController) Update(c *gin.Context) {
	log.L(c).Info("update article function called.")

	var r struct {
		Title      string  `json:"title"      valid:"required,stringlength(1|200)"`
		Summary    string  `json:"summary"    valid:"-"`
		Body       string  `json:"body"       valid:"required"`
		ImageURL   string  `json:"imageUrl"   valid:"-"`
		CategoryID *uint64 `json:"categoryId" valid:"-"`
		LocationID *uint64 `json:"locationId" valid:"-"`
		Status     int     `json:"status"     valid:"range(0|1)"`
	}

	if err := c.ShouldBindJSON(&r); err != nil {
		core.WriteResponse(c, errors.WithCode(code.ErrBind, err.Error()), nil)

		return
	}

	if _, err := govalidator.ValidateStruct(r); err != nil {
		core.WriteResponse(c, errors.WithCode(code.ErrValidation, err.Error()), nil)

		return
	}

	caller, err := a.currentUser(c)
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	article, err := a.srv.Articles().Get(c, c.Param("article"), caller.ID, metav1.GetOptions{})
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	if article.AuthorID != caller.ID && caller.IsAdmin == 0 {
		core.WriteResponse(c, errors.WithCode(code.ErrPermissionDenied, "not allowed to update article %s", article.Name), nil)

		return
	}

	article.Title = r.Title
	article.Summary = r.Summary
	article.Body = r.Body
	article.ImageURL = r.ImageURL
	article.CategoryID = r.CategoryID
	article.LocationID = r.LocationID
	if article.Status != v1.ArticleStatusPublished && r.Status == v1.ArticleStatusPublished {
		now := time.Now()
		article.PublishedAt = &now
	}
	article.Status = r.Status

	if err := a.srv.Articles().Update(c, article, metav1.UpdateOptions{}); err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	core.WriteResponse(c, nil, article)
}
