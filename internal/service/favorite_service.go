package service

import (
	"context"
	"errors"
	"portrait/internal/entity"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const maxFavoritesListed = 500

// FavoriteStore 收藏相关的持久化操作
type FavoriteStore interface {
	ToggleFavorite(ctx context.Context, userID, entryID string, action entity.FavoriteAction) (*entity.FavoriteState, error)
	GetFavoriteState(ctx context.Context, userID, entryID string) (*entity.FavoriteState, error)
	ListFavoriteEntryIDs(ctx context.Context, userID string, limit int) ([]string, error)
}

// FavoriteService 收藏切换与查询
type FavoriteService struct {
	store FavoriteStore
}

func NewFavoriteService(store FavoriteStore) *FavoriteService {
	return &FavoriteService{store: store}
}

// Toggle 在事务内切换收藏并返回最终状态
func (s *FavoriteService) Toggle(ctx context.Context, userID string, req entity.FavoriteRequest) (*entity.FavoriteState, error) {
	entryID := strings.TrimSpace(req.ImageID)
	if entryID == "" {
		return nil, missingField("imageId")
	}
	action := entity.FavoriteAction(strings.ToLower(strings.TrimSpace(string(req.Action))))
	if action == "toggle" {
		action = entity.FavoriteActionToggle
	}
	if !action.Valid() {
		return nil, &Error{Kind: KindValidation, Code: CodeInvalidAction, Message: "action must be add, remove or empty", Field: "action"}
	}

	state, err := s.store.ToggleFavorite(ctx, userID, entryID, action)
	if err != nil {
		return nil, s.translate(err, userID, entryID, "failed to toggle favorite")
	}

	logrus.WithFields(logrus.Fields{
		"user_id":   userID,
		"entry_id":  entryID,
		"favorited": state.Favorited,
		"count":     state.Count,
	}).Info("favorite updated")
	return state, nil
}

// IsFavorited 查询收藏状态
func (s *FavoriteService) IsFavorited(ctx context.Context, userID, entryID string) (*entity.FavoriteState, error) {
	entryID = strings.TrimSpace(entryID)
	if entryID == "" {
		return nil, missingField("imageId")
	}
	state, err := s.store.GetFavoriteState(ctx, userID, entryID)
	if err != nil {
		return nil, s.translate(err, userID, entryID, "failed to read favorite state")
	}
	return state, nil
}

// ListFavorites 当前用户收藏的条目，最新在前
func (s *FavoriteService) ListFavorites(ctx context.Context, userID string) (*entity.FavoriteListResponse, error) {
	ids, err := s.store.ListFavoriteEntryIDs(ctx, userID, maxFavoritesListed)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("failed to list favorites")
		return nil, internalError(CodeInternal, "failed to list favorites", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return &entity.FavoriteListResponse{ImageIDs: ids}, nil
}

func (s *FavoriteService) translate(err error, userID, entryID, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Error{Kind: KindNotFound, Code: CodeNotFound, Message: "image not found", Err: err}
	}
	logrus.WithError(err).WithFields(logrus.Fields{
		"user_id":  userID,
		"entry_id": entryID,
	}).Error(message)
	return internalError(CodeInternal, message, err)
}
