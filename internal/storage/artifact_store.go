package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ArtifactStore 生成对象路径并上传到后端，返回公开访问地址
type ArtifactStore struct {
	backend Storage
	now     func() time.Time
	token   func() string
}

// NewArtifactStore wraps a storage backend.
func NewArtifactStore(backend Storage) *ArtifactStore {
	return &ArtifactStore{
		backend: backend,
		now:     time.Now,
		token:   randomToken,
	}
}

func randomToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// GeneratePath returns "{prefix}/{unixMillis}-{random}.png".
func (s *ArtifactStore) GeneratePath(prefix string) string {
	segment := sanitizePathSegment(prefix)
	if segment == "" {
		segment = "misc"
	}
	return path.Join(segment, fmt.Sprintf("%d-%s.png", s.now().UnixMilli(), s.token()))
}

// Upload stores the bytes at objectPath and returns the public URL.
func (s *ArtifactStore) Upload(ctx context.Context, objectPath string, data []byte, contentType string) (string, error) {
	if s == nil || s.backend == nil {
		return "", fmt.Errorf("storage not configured")
	}
	key, err := cleanKey(objectPath)
	if err != nil {
		return "", err
	}
	if err := s.backend.Put(ctx, key, data, contentType); err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return s.backend.PublicURL(key), nil
}
