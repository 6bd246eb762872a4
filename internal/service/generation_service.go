package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"portrait/internal/auth"
	"portrait/internal/entity"
	"portrait/internal/prompt"
	"portrait/internal/quota"
	"portrait/internal/synthesis"
	"portrait/internal/utils"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	generatedPrefix = "generated"
	originalsPrefix = "originals"
)

// ArtifactUploader 生成对象路径并上传
type ArtifactUploader interface {
	GeneratePath(prefix string) string
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
}

// CatalogWriter 写入公开画廊
type CatalogWriter interface {
	CreateCatalogEntry(ctx context.Context, entry *entity.DbCatalogEntry) error
}

// SourceImage 用户上传的原图
type SourceImage struct {
	Data        []byte
	ContentType string
	Filename    string
}

// GenerationRequest 一次生成请求，图片与风格按给定顺序处理
type GenerationRequest struct {
	Images     []SourceImage
	Selections []entity.StyleSelection
	Size       string
	Publish    bool
	Token      string
}

// GenerationOptions 校验相关配置
type GenerationOptions struct {
	AllowedSizes []string
	DefaultSize  string
	MaxFileBytes int64
}

// unit 一个 (图片, 风格) 合成单元
type unit struct {
	sourceIndex int
	selection   entity.StyleSelection
	prompt      string
}

// GenerationService 生成编排：校验、鉴权、额度检查、逐单元合成、记账
type GenerationService struct {
	verifier  auth.Verifier
	ledger    *quota.Ledger
	synth     synthesis.Client
	artifacts ArtifactUploader
	catalog   CatalogWriter
	validate  *validator.Validate

	allowedSizes map[string]struct{}
	defaultSize  string
	maxFileBytes int64

	newID func() string
	now   func() time.Time
}

// NewGenerationService 创建生成服务实例
func NewGenerationService(
	verifier auth.Verifier,
	ledger *quota.Ledger,
	synth synthesis.Client,
	artifacts ArtifactUploader,
	catalog CatalogWriter,
	opts GenerationOptions,
) *GenerationService {
	allowed := make(map[string]struct{}, len(opts.AllowedSizes))
	for _, size := range opts.AllowedSizes {
		if trimmed := strings.ToLower(strings.TrimSpace(size)); trimmed != "" {
			allowed[trimmed] = struct{}{}
		}
	}
	defaultSize := strings.ToLower(strings.TrimSpace(opts.DefaultSize))
	if defaultSize == "" {
		defaultSize = "1024x1024"
	}
	maxFileBytes := opts.MaxFileBytes
	if maxFileBytes <= 0 {
		maxFileBytes = 4 * 1024 * 1024
	}

	return &GenerationService{
		verifier:     verifier,
		ledger:       ledger,
		synth:        synth,
		artifacts:    artifacts,
		catalog:      catalog,
		validate:     validator.New(),
		allowedSizes: allowed,
		defaultSize:  defaultSize,
		maxFileBytes: maxFileBytes,
		newID:        uuid.NewString,
		now:          time.Now,
	}
}

// Generate 执行完整的生成流程。任一单元合成失败即中止整个请求，
// 已完成单元的产物与画廊条目保留，额度不记账。
func (s *GenerationService) Generate(ctx context.Context, req GenerationRequest) (*entity.GenerationResponse, error) {
	units, size, err := s.prepare(&req)
	if err != nil {
		return nil, err
	}

	userID, err := s.authorize(ctx, req.Token)
	if err != nil {
		return nil, err
	}

	requested := int64(len(units))
	check, err := s.ledger.Check(ctx, userID, requested)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("failed to read usage")
		return nil, internalError(CodeUsageUnavailable, "usage ledger unavailable", err)
	}
	if !check.Allowed {
		return nil, &Error{
			Kind:      KindQuotaExceeded,
			Code:      CodeQuotaExceeded,
			Message:   fmt.Sprintf("daily limit reached, %d generation(s) remaining", check.Remaining),
			Remaining: check.Remaining,
		}
	}

	logger := logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"units":   requested,
		"images":  len(req.Images),
		"size":    size,
		"publish": req.Publish,
	})
	logger.Info("generation started")

	// 已完成的写入不随请求取消而回滚
	persistCtx := context.WithoutCancel(ctx)
	originals := make(map[int]string, len(req.Images))
	attempted := make(map[int]bool, len(req.Images))
	results := make([]entity.GenerationResult, 0, len(units))

	for i, u := range units {
		source := req.Images[u.sourceIndex]
		unitLogger := logger.WithFields(logrus.Fields{
			"unit":         i,
			"source_index": u.sourceIndex,
			"artist":       u.selection.ArtistKey,
			"style":        u.selection.EffectiveStyleKey(),
		})

		generated, err := s.synth.Synthesize(ctx, source.Data, u.prompt, size)
		if err != nil {
			unitLogger.WithError(err).Error("synthesis failed, aborting batch")
			return nil, upstreamFailure(err)
		}

		artifactURL, err := s.artifacts.Upload(persistCtx, s.artifacts.GeneratePath(generatedPrefix), generated, "image/png")
		if err != nil {
			unitLogger.WithError(err).Error("failed to upload generated image")
			return nil, internalError(CodeStorageFailed, "failed to store generated image", err)
		}

		if req.Publish {
			if !attempted[u.sourceIndex] {
				attempted[u.sourceIndex] = true
				originalURL, err := s.artifacts.Upload(persistCtx, s.artifacts.GeneratePath(originalsPrefix), source.Data, source.ContentType)
				if err != nil {
					unitLogger.WithError(err).Warn("failed to upload original image")
				} else {
					originals[u.sourceIndex] = originalURL
				}
			}
			s.publish(persistCtx, unitLogger, userID, u.selection, artifactURL, originals[u.sourceIndex], size)
		}

		results = append(results, entity.GenerationResult{
			SourceIndex: u.sourceIndex,
			ArtistKey:   u.selection.ArtistKey,
			StyleKey:    u.selection.StyleKey,
			DataURL:     utils.EncodeDataURL("image/png", generated),
			PublicURL:   artifactURL,
		})
	}

	s.ledger.Commit(persistCtx, userID, check.DayKey, requested)
	logger.Info("generation completed")

	return &entity.GenerationResponse{Results: results}, nil
}

// UsageStatus 当日额度概览
func (s *GenerationService) UsageStatus(ctx context.Context, userID string) (*entity.UsageStatus, error) {
	status, err := s.ledger.Status(ctx, userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("failed to read usage status")
		return nil, internalError(CodeUsageUnavailable, "usage ledger unavailable", err)
	}
	return status, nil
}

// publish 写入画廊，失败只记录日志
func (s *GenerationService) publish(ctx context.Context, logger *logrus.Entry, userID string, sel entity.StyleSelection, artifactURL, originalURL, size string) {
	if s.catalog == nil {
		return
	}
	entry := &entity.DbCatalogEntry{
		ID:              s.newID(),
		OwnerUserID:     userID,
		ArtistKey:       sel.ArtistKey,
		StyleKey:        sel.EffectiveStyleKey(),
		CustomReference: sel.CustomReference,
		ArtifactURL:     artifactURL,
		OriginalURL:     originalURL,
		Size:            size,
		CreatedAt:       s.now().UTC(),
	}
	if err := s.catalog.CreateCatalogEntry(ctx, entry); err != nil {
		logger.WithError(err).Warn("failed to write catalog entry")
	}
}

func (s *GenerationService) authorize(ctx context.Context, token string) (string, error) {
	if s.verifier == nil {
		return "", internalError(CodeInternal, "identity verifier not configured", nil)
	}
	if strings.TrimSpace(token) == "" {
		return "", &Error{Kind: KindAuth, Code: CodeUnauthorized, Message: "missing identity token"}
	}
	userID, err := s.verifier.Verify(ctx, token)
	if err != nil {
		logrus.WithError(err).Warn("identity verification failed")
		if errors.Is(err, auth.ErrMissingToken) {
			return "", &Error{Kind: KindAuth, Code: CodeUnauthorized, Message: "missing identity token", Err: err}
		}
		return "", &Error{Kind: KindAuth, Code: CodeSessionExpired, Message: "invalid or expired token", Err: err}
	}
	return userID, nil
}

// prepare 校验请求并按图片优先、风格其次的顺序展开合成单元
func (s *GenerationService) prepare(req *GenerationRequest) ([]unit, string, error) {
	if len(req.Images) == 0 {
		return nil, "", missingField("images")
	}
	if len(req.Selections) == 0 {
		return nil, "", missingField("selections")
	}

	for i := range req.Images {
		img := &req.Images[i]
		if len(img.Data) == 0 {
			return nil, "", validationError(CodeInvalidRequest, fmt.Sprintf("image %d is empty", i))
		}
		if int64(len(img.Data)) > s.maxFileBytes {
			return nil, "", validationError(CodeFileTooLarge, fmt.Sprintf("image %d exceeds %d MB", i, s.maxFileBytes/(1024*1024)))
		}
		if strings.TrimSpace(img.ContentType) == "" || img.ContentType == "application/octet-stream" {
			img.ContentType = http.DetectContentType(img.Data)
		}
	}

	size := strings.ToLower(strings.TrimSpace(req.Size))
	if size == "" {
		size = s.defaultSize
	}
	if _, ok := s.allowedSizes[size]; !ok {
		return nil, "", validationError(CodeUnsupportedSize, fmt.Sprintf("unsupported size %q", req.Size))
	}

	prompts := make([]string, len(req.Selections))
	for i := range req.Selections {
		sel := &req.Selections[i]
		sel.ArtistKey = strings.TrimSpace(sel.ArtistKey)
		sel.StyleKey = strings.TrimSpace(sel.StyleKey)
		sel.CustomReference = strings.TrimSpace(sel.CustomReference)

		if err := s.validate.Struct(sel); err != nil {
			return nil, "", &Error{Kind: KindValidation, Code: CodeInvalidSelection, Message: fmt.Sprintf("selection %d is invalid", i), Err: err}
		}
		built, err := prompt.Build(*sel)
		if err != nil {
			return nil, "", &Error{Kind: KindValidation, Code: CodeInvalidSelection, Message: fmt.Sprintf("selection %d: %v", i, err), Err: err}
		}
		prompts[i] = built
	}

	units := make([]unit, 0, len(req.Images)*len(req.Selections))
	for imageIndex := range req.Images {
		for selIndex, sel := range req.Selections {
			units = append(units, unit{
				sourceIndex: imageIndex,
				selection:   sel,
				prompt:      prompts[selIndex],
			})
		}
	}
	return units, size, nil
}

func upstreamFailure(err error) *Error {
	message := "image provider error"
	if kind, ok := synthesis.KindOf(err); ok && kind == synthesis.KindBadResponse {
		message = "invalid response from image provider"
	}
	return &Error{Kind: KindUpstream, Code: CodeUpstreamFailed, Message: message, Err: err}
}
