package api

import (
	"portrait/internal/storage"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// MountLocalFiles 本地存储时在公开前缀下直接提供文件
func MountLocalFiles(r gin.IRoutes, store storage.Storage) {
	localProvider, ok := store.(storage.LocalBaseDirProvider)
	if !ok {
		return
	}
	publicPrefix := strings.TrimSpace(localProvider.PublicBase())
	if publicPrefix == "" || strings.HasPrefix(publicPrefix, "http://") || strings.HasPrefix(publicPrefix, "https://") {
		return
	}
	if !strings.HasPrefix(publicPrefix, "/") {
		publicPrefix = "/" + publicPrefix
	}
	r.Static(publicPrefix, localProvider.LocalBaseDir())
	logrus.WithFields(logrus.Fields{
		"prefix": publicPrefix,
		"dir":    localProvider.LocalBaseDir(),
	}).Info("serving local files")
}
