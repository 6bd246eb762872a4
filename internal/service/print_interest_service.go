package service

import (
	"context"
	"net/url"
	"portrait/internal/entity"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PrintInterestStore 打印意向持久化
type PrintInterestStore interface {
	CreatePrintInterest(ctx context.Context, interest *entity.DbPrintInterest) error
}

// PrintInterestService 记录用户的实体打印意向
type PrintInterestService struct {
	store PrintInterestStore
	newID func() string
	now   func() time.Time
}

func NewPrintInterestService(store PrintInterestStore) *PrintInterestService {
	return &PrintInterestService{
		store: store,
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// Record 校验图片地址并登记，返回记录 ID
func (s *PrintInterestService) Record(ctx context.Context, userID string, req entity.PrintInterestRequest) (string, error) {
	imageURL := strings.TrimSpace(req.ImageURL)
	if imageURL == "" {
		return "", missingField("imageUrl")
	}
	parsed, err := url.Parse(imageURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", &Error{Kind: KindValidation, Code: CodeInvalidRequest, Message: "imageUrl must be an absolute http(s) url", Field: "imageUrl"}
	}

	interest := &entity.DbPrintInterest{
		ID:        s.newID(),
		UserID:    userID,
		ImageURL:  imageURL,
		Options:   req.Options,
		Status:    entity.PrintInterestStatusNew,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.CreatePrintInterest(ctx, interest); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("failed to record print interest")
		return "", internalError(CodeInternal, "failed to record print interest", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"id":      interest.ID,
	}).Info("print interest recorded")
	return interest.ID, nil
}
