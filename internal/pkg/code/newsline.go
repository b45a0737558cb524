// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package code

//go:generate codegen -type=int

// newsline-apiserver: user errors.
const (
	// ErrUserNotFound - 404: User not found.
	ErrUserNotFound int = iota + 110001

	// ErrUserAlreadyExist - 400: User already exists.
	ErrUserAlreadyExist
)

// newsline-apiserver: channel errors.
const (
	// ErrChannelNotFound - 404: Channel not found.
	ErrChannelNotFound int = iota + 110101

	// ErrChannelAlreadyExist - 400: Channel already exists.
	ErrChannelAlreadyExist

	// ErrAlreadySubscribed - 400: Already subscribed to this channel.
	ErrAlreadySubscribed

	// ErrNotSubscribed - 400: Not subscribed to this channel.
	ErrNotSubscribed
)

// newsline-apiserver: article errors.
const (
	// ErrArticleNotFound - 404: Article not found.
	ErrArticleNotFound int = iota + 110201

	// ErrArticleAlreadyExist - 400: Article already exists.
	ErrArticleAlreadyExist
)

// newsline-apiserver: comment errors.
const (
	// ErrCommentNotFound - 404: Comment not found.
	ErrCommentNotFound int = iota + 110301
)

// newsline-apiserver: category and location errors.
const (
	// ErrCategoryNotFound - 404: Category not found.
	ErrCategoryNotFound int = iota + 110401

	// ErrCategoryNotEmpty - 400: Category still has children or articles.
	ErrCategoryNotEmpty

	// ErrLocationNotFound - 404: Location not found.
	ErrLocationNotFound

	// ErrLocationNotEmpty - 400: Location still has children or articles.
	ErrLocationNotEmpty
)

func init() {
	register(ErrUserNotFound, 404, "User not found")
	register(ErrUserAlreadyExist, 400, "User already exists")

	register(ErrChannelNotFound, 404, "Channel not found")
	register(ErrChannelAlreadyExist, 400, "Channel already exists")
	register(ErrAlreadySubscribed, 400, "Already subscribed to this channel")
	register(ErrNotSubscribed, 400, "Not subscribed to this channel")

	register(ErrArticleNotFound, 404, "Article not found")
	register(ErrArticleAlreadyExist, 400, "Article already exists")

	register(ErrCommentNotFound, 404, "Comment not found")

	register(ErrCategoryNotFound, 404, "Category not found")
	register(ErrCategoryNotEmpty, 400, "Category still has children or articles")
	register(ErrLocationNotFound, 404, "Location not found")
	register(ErrLocationNotEmpty, 400, "Location still has children or articles")
}
