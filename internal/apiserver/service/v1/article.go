// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package v1

import (
	"context"
	"regexp"
	"sync"

	metav1 "github.com/marmotedu/component-base/pkg/meta/v1"
	"github.com/marmotedu/errors"
	"gorm.io/gorm"

	"github.com/marmotedu/newsline/internal/apiserver/store"
	"github.com/marmotedu/newsline/internal/pkg/code"
	v1 "github.com/marmotedu/newsline/pkg/api/news/v1"
	"github.com/marmotedu/newsline/pkg/log"
)

// ArticleSrv defines functions used to handle article request, including view
// counting and reactions.
type ArticleSrv interface {
	Create(ctx context.Context, channelSlug string, article *v1.Article, opts metav1.CreateOptions) error
	Update(ctx context.Context, article *v1.Article, opts metav1.UpdateOptions) error
	Delete(ctx context.Context, slug string, opts metav1.DeleteOptions) error
	Get(ctx context.Context, slug string, viewerID uint64, opts metav1.GetOptions) (*v1.Article, error)
	List(ctx context.Context, filter store.ArticleFilter, opts metav1.ListOptions) (*v1.ArticleList, error)
	RecordView(ctx context.Context, slug string, clientID string) (*v1.ViewResult, error)
	SetReaction(ctx context.Context, slug string, userID uint64, isLike bool) (*v1.ReactionSummary, error)
	GetReactions(ctx context.Context, slug string, viewerID uint64) (*v1.ReactionSummary, error)
	SetAdminCounts(
		ctx context.Context,
		slug string,
		likeFloor, dislikeFloor int64,
		viewCount *int64,
	) (*v1.Article, error)
}

type articleService struct {
	store store.Factory
}

var _ ArticleSrv = (*articleService)(nil)

func newArticles(srv *service) *articleService {
	return &articleService{store: srv.store}
}

// Create resolves the channel and stores the article under it. The slug must
// be unique across the platform.
func (a *articleService) Create(
	ctx context.Context,
	channelSlug string,
	article *v1.Article,
	opts metav1.CreateOptions,
) error {
	channel, err := a.store.Channels().Get(ctx, channelSlug, metav1.GetOptions{})
	if err != nil {
		return err
	}

	article.ChannelID = channel.ID

	if err := a.store.Articles().Create(ctx, article, opts); err != nil {
		if errors.IsCode(err, code.ErrArticleAlreadyExist) {
			return err
		}
		if match, _ := regexp.MatchString("Duplicate entry '.*' for key", err.Error()); match {
			return errors.WithCode(code.ErrArticleAlreadyExist, err.Error())
		}

		return errors.WithCode(code.ErrDatabase, err.Error())
	}

	return nil
}

func (a *articleService) Update(ctx context.Context, article *v1.Article, opts metav1.UpdateOptions) error {
	if err := a.store.Articles().Update(ctx, article, opts); err != nil {
		return errors.WithCode(code.ErrDatabase, err.Error())
	}

	return nil
}

func (a *articleService) Delete(ctx context.Context, slug string, opts metav1.DeleteOptions) error {
	return a.store.Articles().Delete(ctx, slug, opts)
}

// Get returns the article enriched with displayed counts and, when viewerID
// is a real user, the viewer's own reaction.
func (a *articleService) Get(
	ctx context.Context,
	slug string,
	viewerID uint64,
	opts metav1.GetOptions,
) (*v1.Article, error) {
	article, err := a.store.Articles().Get(ctx, slug, opts)
	if err != nil {
		return nil, err
	}

	if err := a.enrich(ctx, article, viewerID); err != nil {
		return nil, err
	}

	return article, nil
}

// List returns articles matching the filter, each enriched with displayed
// counts. Counts are fetched in parallel.
func (a *articleService) List(
	ctx context.Context,
	filter store.ArticleFilter,
	opts metav1.ListOptions,
) (*v1.ArticleList, error) {
	articles, err := a.store.Articles().List(ctx, filter, opts)
	if err != nil {
		log.L(ctx).Errorf("list articles from storage failed: %s", err.Error())

		return nil, errors.WithCode(code.ErrDatabase, err.Error())
	}

	var wg sync.WaitGroup
	errChan := make(chan error, 1)
	finished := make(chan bool, 1)

	for _, article := range articles.Items {
		wg.Add(1)

		go func(article *v1.Article) {
			defer wg.Done()

			if err := a.enrich(ctx, article, 0); err != nil {
				select {
				case errChan <- err:
				default:
				}
			}
		}(article)
	}

	go func() {
		wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
	case err := <-errChan:
		return nil, err
	}

	return articles, nil
}

// RecordView counts one view per identity. The existing-mark check and the
// count increment are separate statements: concurrent first views of the same
// identity may over-count, and a failure after the mark insert leaves the
// mark uncounted.
func (a *articleService) RecordView(ctx context.Context, slug string, clientID string) (*v1.ViewResult, error) {
	article, err := a.store.Articles().Get(ctx, slug, metav1.GetOptions{})
	if err != nil {
		return nil, err
	}

	if _, err := a.store.ArticleViews().Get(ctx, article.ID, clientID); err == nil {
		return &v1.ViewResult{Counted: false, ViewCount: article.ViewCount}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := a.store.ArticleViews().Create(ctx, &v1.ArticleView{
		ArticleID: article.ID,
		ClientID:  clientID,
	}); err != nil {
		return nil, errors.WithCode(code.ErrDatabase, err.Error())
	}

	fresh, err := a.store.Articles().Get(ctx, slug, metav1.GetOptions{})
	if err != nil {
		log.L(ctx).Errorf("view mark stored but article re-read failed: %s", err.Error())

		return nil, err
	}

	fresh.ViewCount++
	if err := a.store.Articles().Update(ctx, fresh, metav1.UpdateOptions{}); err != nil {
		log.L(ctx).Errorf("view mark stored but count increment failed: %s", err.Error())

		return nil, errors.WithCode(code.ErrDatabase, err.Error())
	}

	return &v1.ViewResult{Counted: true, ViewCount: fresh.ViewCount}, nil
}

// SetReaction toggles the reaction of a user on an article: an equal reaction
// is removed, a different one is flipped in place, a missing one is inserted.
func (a *articleService) SetReaction(
	ctx context.Context,
	slug string,
	userID uint64,
	isLike bool,
) (*v1.ReactionSummary, error) {
	article, err := a.store.Articles().Get(ctx, slug, metav1.GetOptions{})
	if err != nil {
		return nil, err
	}

	userReaction := reactionName(isLike)

	existing, err := a.store.Reactions().Get(ctx, article.ID, userID)
	switch {
	case err == nil && existing.IsLike == isLike:
		if err := a.store.Reactions().Delete(ctx, article.ID, userID); err != nil {
			return nil, err
		}
		userReaction = v1.ReactionNone
	case err == nil:
		existing.IsLike = isLike
		if err := a.store.Reactions().Update(ctx, existing); err != nil {
			return nil, errors.WithCode(code.ErrDatabase, err.Error())
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := a.store.Reactions().Create(ctx, &v1.Reaction{
			ArticleID: article.ID,
			UserID:    userID,
			IsLike:    isLike,
		}); err != nil {
			return nil, errors.WithCode(code.ErrDatabase, err.Error())
		}
	default:
		return nil, err
	}

	likes, dislikes, err := a.store.Reactions().Count(ctx, article.ID)
	if err != nil {
		return nil, err
	}

	return &v1.ReactionSummary{
		LikeCount:    likes + article.AdminLikeCount,
		DislikeCount: dislikes + article.AdminDislikeCount,
		UserReaction: userReaction,
	}, nil
}

// GetReactions returns the displayed counts of an article and the caller's
// own reaction state.
func (a *articleService) GetReactions(ctx context.Context, slug string, viewerID uint64) (*v1.ReactionSummary, error) {
	article, err := a.store.Articles().Get(ctx, slug, metav1.GetOptions{})
	if err != nil {
		return nil, err
	}

	likes, dislikes, err := a.store.Reactions().Count(ctx, article.ID)
	if err != nil {
		return nil, err
	}

	summary := &v1.ReactionSummary{
		LikeCount:    likes + article.AdminLikeCount,
		DislikeCount: dislikes + article.AdminDislikeCount,
		UserReaction: v1.ReactionNone,
	}

	if viewerID != v1.AdminUserID {
		if reaction, err := a.store.Reactions().Get(ctx, article.ID, viewerID); err == nil {
			summary.UserReaction = reactionName(reaction.IsLike)
		}
	}

	return summary, nil
}

// SetAdminCounts stores the reaction floors and optionally raises the view
// count. The view count never decreases.
func (a *articleService) SetAdminCounts(
	ctx context.Context,
	slug string,
	likeFloor, dislikeFloor int64,
	viewCount *int64,
) (*v1.Article, error) {
	article, err := a.store.Articles().Get(ctx, slug, metav1.GetOptions{})
	if err != nil {
		return nil, err
	}

	article.AdminLikeCount = likeFloor
	article.AdminDislikeCount = dislikeFloor
	if viewCount != nil && *viewCount > article.ViewCount {
		article.ViewCount = *viewCount
	}

	if err := a.store.Articles().Update(ctx, article, metav1.UpdateOptions{}); err != nil {
		return nil, errors.WithCode(code.ErrDatabase, err.Error())
	}

	if err := a.enrich(ctx, article, 0); err != nil {
		return nil, err
	}

	return article, nil
}

// enrich fills the displayed aggregates of an article.
func (a *articleService) enrich(ctx context.Context, article *v1.Article, viewerID uint64) error {
	likes, dislikes, err := a.store.Reactions().Count(ctx, article.ID)
	if err != nil {
		return err
	}

	article.LikeCount = likes + article.AdminLikeCount
	article.DislikeCount = dislikes + article.AdminDislikeCount
	article.UserReaction = v1.ReactionNone

	if viewerID != v1.AdminUserID {
		if reaction, err := a.store.Reactions().Get(ctx, article.ID, viewerID); err == nil {
			article.UserReaction = reactionName(reaction.IsLike)
		}
	}

	return nil
}

func reactionName(isLike bool) string {
	if isLike {
		return v1.ReactionLike
	}

	return v1.ReactionDislike
}
