// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package apiserver

import (
	"github.com/gin-gonic/gin"
	"github.com/marmotedu/component-base/pkg/core"
	"github.com/marmotedu/errors"

	"github.com/marmotedu/newsline/internal/apiserver/controller/v1/article"
	"github.com/marmotedu/newsline/internal/apiserver/controller/v1/category"
	"github.com/marmotedu/newsline/internal/apiserver/controller/v1/channel"
	"github.com/marmotedu/newsline/internal/apiserver/controller/v1/comment"
	"github.com/marmotedu/newsline/internal/apiserver/controller/v1/location"
	"github.com/marmotedu/newsline/internal/apiserver/controller/v1/user"
	"github.com/marmotedu/newsline/internal/apiserver/store/mysql"
	"github.com/marmotedu/newsline/internal/pkg/code"
	"github.com/marmotedu/newsline/internal/pkg/middleware"
	"github.com/marmotedu/newsline/internal/pkg/middleware/auth"
)

func initRouter(g *gin.Engine) {
	installMiddleware(g)
	installController(g)
}

func installMiddleware(g *gin.Engine) {
}

func installController(g *gin.Engine) *gin.Engine {
	// Middlewares.
	jwtStrategy, _ := newJWTAuth().(auth.JWTStrategy)
	g.POST("/login", jwtStrategy.LoginHandler)
	g.POST("/logout", jwtStrategy.LogoutHandler)
	// Refresh time can be longer than token timeout
	g.POST("/refresh", jwtStrategy.RefreshHandler)

	auto := newAutoAuth()
	g.NoRoute(auto.AuthFunc(), func(c *gin.Context) {
		core.WriteResponse(c, errors.WithCode(code.ErrPageNotFound, "Page not found."), nil)
	})

	storeIns, _ := mysql.GetMySQLFactoryOr(nil)

	userController := user.NewUserController(storeIns)
	channelController := channel.NewChannelController(storeIns)
	articleController := article.NewArticleController(storeIns)
	commentController := comment.NewCommentController(storeIns)
	categoryController := category.NewCategoryController(storeIns)
	locationController := location.NewLocationController(storeIns)

	v1 := g.Group("/v1")
	{
		// user RESTful resource
		userv1 := v1.Group("/users")
		{
			userv1.POST("", userController.Create)
			userv1.Use(auto.AuthFunc())
			userv1.DELETE(":name", userController.Delete)
			userv1.PUT(":name/change-password", userController.ChangePassword)
			userv1.PUT(":name", userController.Update)
			userv1.GET("", userController.List)
			userv1.GET(":name", userController.Get)
		}

		// Anonymous readers get the taxonomy trees and may register views.
		v1.GET("/categories", categoryController.Tree)
		v1.GET("/locations", locationController.Tree)
		v1.POST("/articles/:article/view", authIfPresent(auto), articleController.RecordView)

		v1.Use(auto.AuthFunc())

		// category RESTful resource, mutations notify other replicas
		categoryv1 := v1.Group("/categories", middleware.Publish())
		{
			categoryv1.POST("", categoryController.Create)
			categoryv1.DELETE(":category", categoryController.Delete)
		}

		// location RESTful resource, mutations notify other replicas
		locationv1 := v1.Group("/locations", middleware.Publish())
		{
			locationv1.POST("", locationController.Create)
			locationv1.DELETE(":location", locationController.Delete)
		}

		// channel RESTful resource
		channelv1 := v1.Group("/channels")
		{
			channelv1.POST("", channelController.Create)
			channelv1.GET("", channelController.List)
			channelv1.GET(":channel", channelController.Get)
			channelv1.PUT(":channel", channelController.Update)
			channelv1.DELETE(":channel", channelController.Delete)
			channelv1.POST(":channel/subscribe", channelController.Subscribe)
			channelv1.DELETE(":channel/subscribe", channelController.Unsubscribe)
			channelv1.POST(":channel/articles", articleController.Create)
		}

		v1.GET("/subscriptions", channelController.Subscriptions)

		// article RESTful resource
		articlev1 := v1.Group("/articles")
		{
			articlev1.GET("", articleController.List)
			articlev1.GET(":article", articleController.Get)
			articlev1.PUT(":article", articleController.Update)
			articlev1.DELETE(":article", articleController.Delete)
			articlev1.POST(":article/reactions", articleController.SetReaction)
			articlev1.GET(":article/reactions", articleController.GetReactions)
			articlev1.PUT(":article/admin-counts", articleController.SetAdminCounts)
			articlev1.POST(":article/comments", commentController.Create)
			articlev1.GET(":article/comments", commentController.List)
		}

		// comment RESTful resource, addressed by instance id
		commentv1 := v1.Group("/comments")
		{
			commentv1.PUT(":id", commentController.Update)
			commentv1.DELETE(":id", commentController.Delete)
		}
	}

	return g
}

// authIfPresent authenticates the request when credentials were sent and lets
// anonymous requests pass. Views are counted for both, but the identity used
// for de-duplication differs.
func authIfPresent(strategy middleware.AuthStrategy) gin.HandlerFunc {
	authFunc := strategy.AuthFunc()

	return func(c *gin.Context) {
		if c.Request.Header.Get("Authorization") != "" {
			authFunc(c)

			return
		}

		c.Next()
	}
}
