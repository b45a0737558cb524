// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package article

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/marmotedu/component-base/pkg/core"

	"github.com/marmotedu/newsline/internal/apiserver/analytics"
	"github.com/marmotedu/newsline/pkg/log"
)

// RecordView counts one view of an article per identity. The endpoint is
// reachable without a token; a bearer token, when present, is used for the
// identity.
func (a *ArticleController) RecordView(c *gin.Context) {
	log.L(c).Info("record view function called.")

	slug := c.Param("article")
	clientID := a.clientID(c)

	result, err := a.srv.Articles().RecordView(c, slug, clientID)
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	if ana := analytics.GetAnalytics(); ana != nil {
		record := &analytics.AnalyticsRecord{
			TimeStamp: time.Now().Unix(),
			Slug:      slug,
			ClientID:  clientID,
			Counted:   result.Counted,
		}
		record.SetExpiry(0)
		if err := ana.RecordHit(record); err != nil {
			log.L(c).Warnf("record view analytics failed: %s", err.Error())
		}
	}

	core.WriteResponse(c, nil, result)
}
