package config

import (
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBType     string `env:"DBType" envDefault:"sqlite"`
	DSNURL     string `env:"DSN_URL" envDefault:""`
	DBUser     string `env:"DBUser" envDefault:""`
	DBPassword string `env:"DBPassword" envDefault:""`
	DBAddr     string `env:"DBAddr" envDefault:""`
	DBName     string `env:"DBName" envDefault:"portrait"`
	DBPath     string `env:"DBPath" envDefault:"datas/portrait.db"`
	DBPort     string `env:"DBPort" envDefault:"3306"`

	// 每日生成额度，sql 使用数据库计数，redis 使用 INCRBY 计数
	UsageBackend  string `env:"USAGE_BACKEND" envDefault:"sql"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"127.0.0.1:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	DailyLimit  int64    `env:"DAILY_LIMIT" envDefault:"3"`
	MaxFileMB   int64    `env:"MAX_FILE_MB" envDefault:"4"`
	ImageSizes  []string `env:"IMAGE_SIZES" envSeparator:"," envDefault:"512x768,768x1152,1024x1536,512x512,1024x1024,768x512,1152x768,1536x1024"`
	DefaultSize string   `env:"DEFAULT_SIZE" envDefault:"1024x1024"`

	StorageType          string `env:"STORAGE_TYPE" envDefault:"local"`
	StorageLocalDir      string `env:"STORAGE_LOCAL_DIR" envDefault:"datas/images"`
	StoragePublicBaseURL string `env:"STORAGE_PUBLIC_BASE_URL" envDefault:"/files"`

	// S3 兼容存储配置
	StorageS3Region          string `env:"STORAGE_S3_REGION"`
	StorageS3Bucket          string `env:"STORAGE_S3_BUCKET"`
	StorageS3Prefix          string `env:"STORAGE_S3_PREFIX"`
	StorageS3Endpoint        string `env:"STORAGE_S3_ENDPOINT"`
	StorageS3AccessKeyID     string `env:"STORAGE_S3_ACCESS_KEY_ID"`
	StorageS3SecretAccessKey string `env:"STORAGE_S3_SECRET_ACCESS_KEY"`
	StorageS3SessionToken    string `env:"STORAGE_S3_SESSION_TOKEN"`
	StorageS3ForcePathStyle  bool   `env:"STORAGE_S3_FORCE_PATH_STYLE" envDefault:"false"`

	// 阿里云 OSS 存储配置
	StorageOSSEndpoint        string `env:"STORAGE_OSS_ENDPOINT"`
	StorageOSSBucket          string `env:"STORAGE_OSS_BUCKET"`
	StorageOSSPrefix          string `env:"STORAGE_OSS_PREFIX"`
	StorageOSSAccessKeyID     string `env:"STORAGE_OSS_ACCESS_KEY_ID"`
	StorageOSSAccessKeySecret string `env:"STORAGE_OSS_ACCESS_KEY_SECRET"`

	// 腾讯云 COS 存储配置
	StorageCOSBucketURL string `env:"STORAGE_COS_BUCKET_URL"`
	StorageCOSPrefix    string `env:"STORAGE_COS_PREFIX"`
	StorageCOSSecretID  string `env:"STORAGE_COS_SECRET_ID"`
	StorageCOSSecretKey string `env:"STORAGE_COS_SECRET_KEY"`

	// Cloudflare R2 存储配置
	StorageR2AccountID       string `env:"STORAGE_R2_ACCOUNT_ID"`
	StorageR2Endpoint        string `env:"STORAGE_R2_ENDPOINT"`
	StorageR2Region          string `env:"STORAGE_R2_REGION" envDefault:"auto"`
	StorageR2Bucket          string `env:"STORAGE_R2_BUCKET"`
	StorageR2Prefix          string `env:"STORAGE_R2_PREFIX"`
	StorageR2AccessKeyID     string `env:"STORAGE_R2_ACCESS_KEY_ID"`
	StorageR2SecretAccessKey string `env:"STORAGE_R2_SECRET_ACCESS_KEY"`

	// 图像合成服务商
	SynthesisDriver  string `env:"SYNTHESIS_DRIVER" envDefault:"openai"`
	OpenAIAPIKey     string `env:"OPENAI_API_KEY" envDefault:""`
	OpenAIImagesURL  string `env:"OPENAI_IMAGES_URL" envDefault:"https://api.openai.com/v1/images/edits"`
	OpenAIModel      string `env:"OPENAI_IMAGE_MODEL" envDefault:"gpt-image-1"`
	VolcengineAPIKey string `env:"VOLCENGINE_API_KEY" envDefault:""`
	VolcengineModel  string `env:"VOLCENGINE_MODEL" envDefault:"doubao-seedream-4-0-250828"`

	JWTSecret            string `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	JWTIssuer            string `env:"JWT_ISSUER" envDefault:"portrait-app"`
	JWTExpirationMinutes int    `env:"JWT_EXPIRATION_MINUTES" envDefault:"1440"`
}

// MaxFileBytes 单个上传文件的字节上限
func (c Config) MaxFileBytes() int64 {
	if c.MaxFileMB <= 0 {
		return 4 * 1024 * 1024
	}
	return c.MaxFileMB * 1024 * 1024
}

// AllowedSizes 返回规范化后的尺寸白名单
func (c Config) AllowedSizes() []string {
	sizes := make([]string, 0, len(c.ImageSizes))
	for _, size := range c.ImageSizes {
		if trimmed := strings.ToLower(strings.TrimSpace(size)); trimmed != "" {
			sizes = append(sizes, trimmed)
		}
	}
	return sizes
}

func ParseConfig() (Config, error) {
	var Conf Config
	err := env.Parse(&Conf)
	if err != nil {
		logrus.WithError(err).Error("env.Parse error")
		return Config{}, err
	}
	logrus.Debugf("%#v\n", Conf)
	return Conf, nil
}
