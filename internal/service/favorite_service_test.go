package service

import (
	"context"
	"errors"
	"portrait/internal/entity"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memoryFavorites struct {
	entries   map[string]int64
	favorites map[string]bool
	order     []string
	listErr   error
	lastLimit int
}

func newMemoryFavorites(entryIDs ...string) *memoryFavorites {
	m := &memoryFavorites{entries: make(map[string]int64), favorites: make(map[string]bool)}
	for _, id := range entryIDs {
		m.entries[id] = 0
	}
	return m
}

func (m *memoryFavorites) ToggleFavorite(_ context.Context, userID, entryID string, action entity.FavoriteAction) (*entity.FavoriteState, error) {
	if _, ok := m.entries[entryID]; !ok {
		return nil, gorm.ErrRecordNotFound
	}
	key := userID + "/" + entryID
	current := m.favorites[key]
	target := action.Resolve(current)
	if target && !current {
		m.entries[entryID]++
		m.order = append([]string{entryID}, m.order...)
	}
	if !target && current && m.entries[entryID] > 0 {
		m.entries[entryID]--
	}
	m.favorites[key] = target
	return &entity.FavoriteState{Favorited: target, Count: m.entries[entryID]}, nil
}

func (m *memoryFavorites) GetFavoriteState(_ context.Context, userID, entryID string) (*entity.FavoriteState, error) {
	count, ok := m.entries[entryID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &entity.FavoriteState{Favorited: m.favorites[userID+"/"+entryID], Count: count}, nil
}

func (m *memoryFavorites) ListFavoriteEntryIDs(_ context.Context, _ string, limit int) ([]string, error) {
	m.lastLimit = limit
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.order, nil
}

func TestFavoriteToggleSequence(t *testing.T) {
	store := newMemoryFavorites("img-1")
	svc := NewFavoriteService(store)
	ctx := context.Background()

	state, err := svc.Toggle(ctx, "u1", entity.FavoriteRequest{ImageID: "img-1"})
	require.NoError(t, err)
	assert.Equal(t, entity.FavoriteState{Favorited: true, Count: 1}, *state)

	state, err = svc.Toggle(ctx, "u1", entity.FavoriteRequest{ImageID: "img-1", Action: "ADD"})
	require.NoError(t, err)
	assert.Equal(t, entity.FavoriteState{Favorited: true, Count: 1}, *state)

	state, err = svc.Toggle(ctx, "u1", entity.FavoriteRequest{ImageID: "img-1", Action: "toggle"})
	require.NoError(t, err)
	assert.Equal(t, entity.FavoriteState{Favorited: false, Count: 0}, *state)

	state, err = svc.IsFavorited(ctx, "u1", "img-1")
	require.NoError(t, err)
	assert.False(t, state.Favorited)
}

func TestFavoriteToggleErrors(t *testing.T) {
	svc := NewFavoriteService(newMemoryFavorites("img-1"))
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "u1", entity.FavoriteRequest{ImageID: " "})
	svcErr := requireServiceError(t, err, KindValidation, CodeMissingField)
	assert.Equal(t, "imageId", svcErr.Field)

	_, err = svc.Toggle(ctx, "u1", entity.FavoriteRequest{ImageID: "img-1", Action: "like"})
	requireServiceError(t, err, KindValidation, CodeInvalidAction)

	_, err = svc.Toggle(ctx, "u1", entity.FavoriteRequest{ImageID: "missing"})
	requireServiceError(t, err, KindNotFound, CodeNotFound)

	_, err = svc.IsFavorited(ctx, "u1", "missing")
	requireServiceError(t, err, KindNotFound, CodeNotFound)
}

func TestListFavorites(t *testing.T) {
	store := newMemoryFavorites("img-1", "img-2")
	svc := NewFavoriteService(store)
	ctx := context.Background()

	resp, err := svc.ListFavorites(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{}, resp.ImageIDs)

	_, err = svc.Toggle(ctx, "u1", entity.FavoriteRequest{ImageID: "img-1"})
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, "u1", entity.FavoriteRequest{ImageID: "img-2"})
	require.NoError(t, err)

	resp, err = svc.ListFavorites(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"img-2", "img-1"}, resp.ImageIDs)
	assert.Equal(t, 500, store.lastLimit)

	store.listErr = errors.New("db down")
	_, err = svc.ListFavorites(ctx, "u1")
	requireServiceError(t, err, KindInternal, CodeInternal)
}
