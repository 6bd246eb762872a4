package main

import (
	"context"
	"fmt"
	"net/http"
	"portrait/internal/api"
	"portrait/internal/auth"
	"portrait/internal/config"
	"portrait/internal/model"
	"portrait/internal/quota"
	"portrait/internal/service"
	"portrait/internal/storage"
	"portrait/internal/synthesis"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	// 初始化配置
	cfg, err := config.ParseConfig()
	if err != nil {
		logrus.WithError(err).Error("Failed to parse config")
		return
	}

	repo, err := model.InitRepository(&cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise repository")
		return
	}

	counter, err := newUsageCounter(cfg, repo)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise usage counter")
		return
	}

	store, err := storage.NewStorage(cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise storage")
		return
	}

	synth, err := synthesis.NewClient(cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise synthesis client")
		return
	}

	expiry := time.Duration(cfg.JWTExpirationMinutes) * time.Minute
	verifier, err := auth.NewManager(cfg.JWTSecret, cfg.JWTIssuer, expiry)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise token verifier")
		return
	}

	ledger := quota.NewLedger(counter, cfg.DailyLimit)
	generation := service.NewGenerationService(verifier, ledger, synth, storage.NewArtifactStore(store), repo, service.GenerationOptions{
		AllowedSizes: cfg.AllowedSizes(),
		DefaultSize:  cfg.DefaultSize,
		MaxFileBytes: cfg.MaxFileBytes(),
	})
	httpHandler := api.NewHTTPHandler(verifier, cfg.MaxFileBytes(), generation,
		service.NewFavoriteService(repo),
		service.NewPrintInterestService(repo),
	)

	// 设置Gin模式
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// 添加中间件
	r.Use(LoggingMiddleware())
	r.Use(CORSMiddleware())
	r.Use(gin.Recovery())

	httpHandler.RegisterRoutes(r)
	api.MountLocalFiles(r, store)

	serverHost := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
	logrus.WithFields(logrus.Fields{
		"host":          serverHost,
		"storage":       cfg.StorageType,
		"synthesis":     cfg.SynthesisDriver,
		"usage_backend": cfg.UsageBackend,
		"daily_limit":   cfg.DailyLimit,
	}).Info("服务器启动")
	// 生成请求串行调用服务商，写超时需覆盖多个单元的耗时
	httpServer := &http.Server{
		Addr:         serverHost,
		Handler:      r,
		ReadTimeout:  900 * time.Second,
		WriteTimeout: 900 * time.Second,
		IdleTimeout:  1200 * time.Second,
	}
	err = httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logrus.WithError(err).Error("服务器启动失败")
	}
}

// newUsageCounter 选择额度计数后端
func newUsageCounter(cfg config.Config, repo model.Repository) (quota.Counter, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.UsageBackend)) {
	case "", "sql":
		return repo, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("ping redis %s: %w", cfg.RedisAddr, err)
		}
		return quota.NewRedisCounter(client), nil
	default:
		return nil, fmt.Errorf("unsupported usage backend: %s", cfg.UsageBackend)
	}
}

// CORSMiddleware CORS跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// LoggingMiddleware 日志记录中间件
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logrus.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"duration":  time.Since(start).String(),
			"size":      c.Writer.Size(),
			"client_ip": c.ClientIP(),
		}).Info("http_request")
	}
}
