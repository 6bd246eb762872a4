package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"portrait/internal/service"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const multipartMemory = 32 << 20

// Generate 处理 multipart 生成请求
func (h *HTTPHandler) Generate(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(multipartMemory); err != nil {
		logrus.WithError(err).Warn("failed to parse multipart form")
		InvalidPayload(c)
		return
	}

	req := service.GenerationRequest{
		Size:  strings.TrimSpace(c.PostForm("size")),
		Token: bearerToken(c),
	}
	if req.Token == "" {
		req.Token = strings.TrimSpace(c.PostForm("idToken"))
	}
	if raw := strings.TrimSpace(c.PostForm("publish")); raw != "" {
		publish, err := strconv.ParseBool(raw)
		if err != nil {
			ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeInvalidRequest, "publish must be true or false", gin.H{"field": "publish"})
			return
		}
		req.Publish = publish
	}

	if raw := strings.TrimSpace(c.PostForm("selections")); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Selections); err != nil {
			ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeInvalidRequest, "selections must be a JSON array", gin.H{"field": "selections"})
			return
		}
	}

	images, ok := h.readImages(c)
	if !ok {
		return
	}
	req.Images = images

	resp, err := h.generation.Generate(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// readImages 读取上传文件，超出大小限制时直接写回 400
func (h *HTTPHandler) readImages(c *gin.Context) ([]service.SourceImage, bool) {
	if c.Request.MultipartForm == nil {
		return nil, true
	}
	headers := c.Request.MultipartForm.File["images"]
	images := make([]service.SourceImage, 0, len(headers))
	for i, header := range headers {
		if h.maxFileBytes > 0 && header.Size > h.maxFileBytes {
			BadRequest(c, ErrCodeFileTooLarge, fmt.Sprintf("image %d exceeds %d MB", i, h.maxFileBytes/(1024*1024)))
			return nil, false
		}
		file, err := header.Open()
		if err != nil {
			logrus.WithError(err).WithField("filename", header.Filename).Warn("failed to open uploaded file")
			InvalidPayload(c)
			return nil, false
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			logrus.WithError(err).WithField("filename", header.Filename).Warn("failed to read uploaded file")
			InvalidPayload(c)
			return nil, false
		}
		images = append(images, service.SourceImage{
			Data:        data,
			ContentType: header.Header.Get("Content-Type"),
			Filename:    header.Filename,
		})
	}
	return images, true
}

// GenerationStatus 当日额度
func (h *HTTPHandler) GenerationStatus(c *gin.Context) {
	status, err := h.generation.UsageStatus(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
