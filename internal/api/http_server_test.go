package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"portrait/internal/auth"
	"portrait/internal/config"
	"portrait/internal/entity"
	"portrait/internal/model"
	"portrait/internal/quota"
	"portrait/internal/service"
	"portrait/internal/storage"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\nfake-png-body")

type recordingGenerator struct {
	last   service.GenerationRequest
	err    error
	status *entity.UsageStatus
}

func (g *recordingGenerator) Generate(_ context.Context, req service.GenerationRequest) (*entity.GenerationResponse, error) {
	g.last = req
	if g.err != nil {
		return nil, g.err
	}
	return &entity.GenerationResponse{Results: []entity.GenerationResult{}}, nil
}

func (g *recordingGenerator) UsageStatus(_ context.Context, _ string) (*entity.UsageStatus, error) {
	return g.status, g.err
}

type fixedSynth struct{}

func (fixedSynth) Synthesize(_ context.Context, _ []byte, _, _ string) ([]byte, error) {
	return pngBytes, nil
}

type multipartField struct {
	name  string
	value string
}

func newMultipartRequest(t *testing.T, images [][]byte, fields ...multipartField) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for i, img := range images {
		part, err := writer.CreateFormFile("images", "dog"+string(rune('a'+i))+".png")
		require.NoError(t, err)
		_, err = part.Write(img)
		require.NoError(t, err)
	}
	for _, f := range fields {
		require.NoError(t, writer.WriteField(f.name, f.value))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/generate", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func newTestManager(t *testing.T) *auth.Manager {
	t.Helper()
	manager, err := auth.NewManager("test-secret", "portrait-app", time.Hour)
	require.NoError(t, err)
	return manager
}

func issueToken(t *testing.T, manager *auth.Manager, userID string) string {
	t.Helper()
	token, _, err := manager.GenerateToken(userID, userID+"@example.com")
	require.NoError(t, err)
	return token
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func TestGenerateParsesMultipart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gen := &recordingGenerator{}
	handler := NewHTTPHandler(newTestManager(t), 1024, gen, nil, nil)
	r := gin.New()
	handler.RegisterRoutes(r)

	req := newMultipartRequest(t, [][]byte{pngBytes, pngBytes},
		multipartField{"selections", `[{"artistKey":"picasso","styleKey":"blue_period"},{"artistKey":"vangogh","customReference":"Irises"}]`},
		multipartField{"size", "512x768"},
		multipartField{"publish", "true"},
		multipartField{"idToken", "form-token"},
	)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, gen.last.Images, 2)
	assert.Equal(t, pngBytes, gen.last.Images[0].Data)
	require.Len(t, gen.last.Selections, 2)
	assert.Equal(t, "Irises", gen.last.Selections[1].CustomReference)
	assert.Equal(t, "512x768", gen.last.Size)
	assert.True(t, gen.last.Publish)
	assert.Equal(t, "form-token", gen.last.Token)

	var body map[string]any
	decodeJSON(t, w, &body)
	assert.Contains(t, body, "results")
}

func TestGeneratePrefersAuthorizationHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gen := &recordingGenerator{}
	handler := NewHTTPHandler(newTestManager(t), 1024, gen, nil, nil)
	r := gin.New()
	handler.RegisterRoutes(r)

	req := newMultipartRequest(t, [][]byte{pngBytes},
		multipartField{"selections", `[{"artistKey":"picasso","styleKey":"blue_period"}]`},
		multipartField{"idToken", "form-token"},
	)
	req.Header.Set("Authorization", "Bearer header-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "header-token", gen.last.Token)
	assert.False(t, gen.last.Publish)
}

func TestGenerateRejectsMalformedInput(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		req    func(t *testing.T) *http.Request
		code   string
		status int
	}{
		{
			name: "not multipart",
			req: func(t *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{}`))
				req.Header.Set("Content-Type", "application/json")
				return req
			},
			code:   ErrCodeInvalidRequest,
			status: http.StatusBadRequest,
		},
		{
			name: "selections not json",
			req: func(t *testing.T) *http.Request {
				return newMultipartRequest(t, [][]byte{pngBytes}, multipartField{"selections", "picasso"})
			},
			code:   ErrCodeInvalidRequest,
			status: http.StatusBadRequest,
		},
		{
			name: "publish not boolean",
			req: func(t *testing.T) *http.Request {
				return newMultipartRequest(t, [][]byte{pngBytes}, multipartField{"publish", "maybe"})
			},
			code:   ErrCodeInvalidRequest,
			status: http.StatusBadRequest,
		},
		{
			name: "file too large",
			req: func(t *testing.T) *http.Request {
				return newMultipartRequest(t, [][]byte{make([]byte, 4096)})
			},
			code:   ErrCodeFileTooLarge,
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &recordingGenerator{}
			handler := NewHTTPHandler(newTestManager(t), 1024, gen, nil, nil)
			r := gin.New()
			handler.RegisterRoutes(r)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, tt.req(t))

			assert.Equal(t, tt.status, w.Code)
			var apiErr APIError
			decodeJSON(t, w, &apiErr)
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Nil(t, gen.last.Images)
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	manager := newTestManager(t)
	gen := &recordingGenerator{status: &entity.UsageStatus{DailyLimit: 3, Remaining: 3}}
	handler := NewHTTPHandler(manager, 1024, gen, nil, nil)
	r := gin.New()
	handler.RegisterRoutes(r)

	tests := []struct {
		name   string
		header string
		status int
		code   string
	}{
		{name: "missing header", header: "", status: http.StatusUnauthorized, code: ErrCodeUnauthorized},
		{name: "wrong scheme", header: "Basic abc", status: http.StatusUnauthorized, code: ErrCodeUnauthorized},
		{name: "bad token", header: "Bearer not-a-jwt", status: http.StatusUnauthorized, code: ErrCodeSessionExpired},
		{name: "valid", header: "Bearer " + issueToken(t, manager, "u1"), status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/generation-status", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.code != "" {
				var apiErr APIError
				decodeJSON(t, w, &apiErr)
				assert.Equal(t, tt.code, apiErr.Code)
			}
		})
	}
}

func TestListStyles(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHTTPHandler(newTestManager(t), 1024, &recordingGenerator{}, nil, nil)
	r := gin.New()
	handler.RegisterRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/styles", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"key":"picasso"`)
	assert.NotContains(t, w.Body.String(), "Create an artistic dog portrait")
}

// newIntegrationServer 使用 SQLite 与本地存储组装完整的服务
func newIntegrationServer(t *testing.T, limit int64) (*gin.Engine, *auth.Manager, model.Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()

	repo, err := model.InitRepository(&config.Config{DBType: "sqlite", DBPath: filepath.Join(dir, "portrait.db")})
	require.NoError(t, err)

	local, err := storage.NewLocalStorage(filepath.Join(dir, "images"), "/files")
	require.NoError(t, err)

	manager := newTestManager(t)
	ledger := quota.NewLedger(repo, limit)
	generation := service.NewGenerationService(manager, ledger, fixedSynth{}, storage.NewArtifactStore(local), repo, service.GenerationOptions{
		AllowedSizes: []string{"1024x1024"},
		DefaultSize:  "1024x1024",
		MaxFileBytes: 1024,
	})
	handler := NewHTTPHandler(manager, 1024, generation,
		service.NewFavoriteService(repo),
		service.NewPrintInterestService(repo),
	)

	r := gin.New()
	handler.RegisterRoutes(r)
	MountLocalFiles(r, local)
	return r, manager, repo
}

func TestGenerateEndToEnd(t *testing.T) {
	r, manager, _ := newIntegrationServer(t, 3)
	token := issueToken(t, manager, "u1")
	selections := multipartField{"selections", `[{"artistKey":"picasso","styleKey":"blue_period"},{"artistKey":"munch","styleKey":"scream"}]`}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, newMultipartRequest(t, [][]byte{pngBytes}, selections,
		multipartField{"publish", "true"},
		multipartField{"idToken", token},
	))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp entity.GenerationResponse
	decodeJSON(t, w, &resp)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "picasso", resp.Results[0].ArtistKey)
	assert.True(t, strings.HasPrefix(resp.Results[0].PublicURL, "/files/generated/"))
	assert.True(t, strings.HasPrefix(resp.Results[1].DataURL, "data:image/png;base64,"))

	// 生成的文件可以通过公开前缀访问
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, resp.Results[0].PublicURL, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, pngBytes, w.Body.Bytes())

	statusReq := httptest.NewRequest(http.MethodGet, "/api/generation-status", nil)
	statusReq.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, statusReq)
	require.Equal(t, http.StatusOK, w.Code)
	var status entity.UsageStatus
	decodeJSON(t, w, &status)
	assert.Equal(t, int64(2), status.Used)
	assert.Equal(t, int64(1), status.Remaining)
	assert.Equal(t, int64(3), status.DailyLimit)

	// 剩余 1 次，再请求 2 个单元被拒绝
	w = httptest.NewRecorder()
	r.ServeHTTP(w, newMultipartRequest(t, [][]byte{pngBytes}, selections, multipartField{"idToken", token}))
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	var apiErr struct {
		Code    string         `json:"code"`
		Details map[string]any `json:"details"`
	}
	decodeJSON(t, w, &apiErr)
	assert.Equal(t, ErrCodeQuotaExceeded, apiErr.Code)
	assert.Equal(t, float64(1), apiErr.Details["remaining"])
}

func TestGenerateEndToEndRequiresToken(t *testing.T) {
	r, _, _ := newIntegrationServer(t, 3)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, newMultipartRequest(t, [][]byte{pngBytes},
		multipartField{"selections", `[{"artistKey":"picasso","styleKey":"blue_period"}]`},
	))
	require.Equal(t, http.StatusUnauthorized, w.Code)
	var apiErr APIError
	decodeJSON(t, w, &apiErr)
	assert.Equal(t, ErrCodeUnauthorized, apiErr.Code)
}

func TestFavoritesEndToEnd(t *testing.T) {
	r, manager, repo := newIntegrationServer(t, 3)
	token := issueToken(t, manager, "u1")
	require.NoError(t, repo.CreateCatalogEntry(context.Background(), &entity.DbCatalogEntry{
		ID:          "entry-1",
		OwnerUserID: "owner",
		ArtistKey:   "picasso",
		StyleKey:    "blue_period",
		ArtifactURL: "/files/generated/1.png",
		CreatedAt:   time.Now().UTC(),
	}))

	do := func(method, target, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body != "" {
			req = httptest.NewRequest(method, target, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
		} else {
			req = httptest.NewRequest(method, target, nil)
		}
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := do(http.MethodPost, "/api/favorite", `{"imageId":"entry-1"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var state entity.FavoriteState
	decodeJSON(t, w, &state)
	assert.Equal(t, entity.FavoriteState{Favorited: true, Count: 1}, state)

	w = do(http.MethodGet, "/api/is-favorited?imageId=entry-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &state)
	assert.True(t, state.Favorited)

	w = do(http.MethodGet, "/api/my-favorites", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list entity.FavoriteListResponse
	decodeJSON(t, w, &list)
	assert.Equal(t, []string{"entry-1"}, list.ImageIDs)

	w = do(http.MethodPost, "/api/favorite", `{"imageId":"entry-1","action":"remove"}`)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &state)
	assert.Equal(t, entity.FavoriteState{Favorited: false, Count: 0}, state)

	w = do(http.MethodPost, "/api/favorite", `{"imageId":"missing"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(http.MethodPost, "/api/favorite", `{"imageId":"entry-1","action":"like"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(http.MethodGet, "/api/is-favorited", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(http.MethodPost, "/api/print-interest", `{"imageUrl":"https://cdn.example.com/generated/1.png","options":{"format":"canvas"}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var printResp struct {
		OK bool   `json:"ok"`
		ID string `json:"id"`
	}
	decodeJSON(t, w, &printResp)
	assert.True(t, printResp.OK)
	assert.NotEmpty(t, printResp.ID)
}
