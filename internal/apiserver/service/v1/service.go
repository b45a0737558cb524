// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package v1

//go:generate mockgen -self_package=github.com/marmotedu/newsline/internal/apiserver/service/v1 -destination mock_service.go -package v1 github.com/marmotedu/newsline/internal/apiserver/service/v1 Service,UserSrv,ChannelSrv,ArticleSrv,CommentSrv,CategorySrv,LocationSrv

import "github.com/marmotedu/newsline/internal/apiserver/store"

// Service defines functions used to return resource interface.
type Service interface {
	Users() UserSrv
	Channels() ChannelSrv
	Articles() ArticleSrv
	Comments() CommentSrv
	Categories() CategorySrv
	Locations() LocationSrv
}

type service struct {
	store store.Factory
}

// NewService returns Service interface.
func NewService(store store.Factory) Service {
	return &service{
		store: store,
	}
}

func (s *service) Users() UserSrv {
	return newUsers(s)
}

func (s *service) Channels() ChannelSrv {
	return newChannels(s)
}

func (s *service) Articles() ArticleSrv {
	return newArticles(s)
}

func (s *service) Comments() CommentSrv {
	return newComments(s)
}

func (s *service) Categories() CategorySrv {
	return newCategories(s)
}

func (s *service) Locations() LocationSrv {
	return newLocations(s)
}
