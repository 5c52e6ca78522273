package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/geonjuring/parking-system/internal/logger"
	"github.com/geonjuring/parking-system/internal/models"
	"github.com/geonjuring/parking-system/internal/registry"
	"github.com/geonjuring/parking-system/internal/repository"
)

// MockFavoriteRepository is a mock implementation of FavoriteRepository for testing
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Add(ctx context.Context, userID, dongName, lotName string) (*models.Favorite, error) {
	args := m.Called(ctx, userID, dongName, lotName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, userID, dongName, lotName string) (bool, error) {
	args := m.Called(ctx, userID, dongName, lotName)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) List(ctx context.Context, userID string) ([]models.Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) IsFavorite(ctx context.Context, userID, dongName, lotName string) (bool, error) {
	args := m.Called(ctx, userID, dongName, lotName)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) Clear(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func newTestFavoriteService(repo repository.FavoriteRepository) FavoriteService {
	return NewFavoriteService(repo, registry.Default(), logger.New("test"))
}

func TestFavoriteService_Add(t *testing.T) {
	mockRepo := new(MockFavoriteRepository)
	service := newTestFavoriteService(mockRepo)
	ctx := context.Background()

	expected := &models.Favorite{
		ID:        uuid.New(),
		UserID:    "user-1",
		DongName:  "연향동",
		LotName:   "연향 제1공영주차장",
		CreatedAt: time.Now(),
	}
	mockRepo.On("Add", ctx, "user-1", "연향동", "연향 제1공영주차장").Return(expected, nil)

	fav, err := service.Add(ctx, "user-1", "연향동", "연향 제1공영주차장")
	require.NoError(t, err)
	assert.Equal(t, expected.ID, fav.ID)
	mockRepo.AssertExpectations(t)
}

func TestFavoriteService_Add_UnknownLot(t *testing.T) {
	mockRepo := new(MockFavoriteRepository)
	service := newTestFavoriteService(mockRepo)

	_, err := service.Add(context.Background(), "user-1", "연향동", "없는주차장")
	assert.ErrorIs(t, err, ErrLotNotFound)

	// Repository is not touched for unknown lots
	mockRepo.AssertNotCalled(t, "Add")
}

func TestFavoriteService_Add_WrongDong(t *testing.T) {
	mockRepo := new(MockFavoriteRepository)
	service := newTestFavoriteService(mockRepo)

	// 연향 제1공영주차장 is in 연향동, not 조례동
	_, err := service.Add(context.Background(), "user-1", "조례동", "연향 제1공영주차장")
	assert.ErrorIs(t, err, ErrLotNotFound)
	mockRepo.AssertNotCalled(t, "Add")
}

func TestFavoriteService_Add_Duplicate(t *testing.T) {
	mockRepo := new(MockFavoriteRepository)
	service := newTestFavoriteService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Add", ctx, "user-1", "연향동", "연향 제1공영주차장").
		Return(nil, repository.ErrDuplicateFavorite)

	_, err := service.Add(ctx, "user-1", "연향동", "연향 제1공영주차장")
	assert.ErrorIs(t, err, repository.ErrDuplicateFavorite)
	mockRepo.AssertExpectations(t)
}

func TestFavoriteService_Remove(t *testing.T) {
	mockRepo := new(MockFavoriteRepository)
	service := newTestFavoriteService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Remove", ctx, "user-1", "연향동", "연향 제1공영주차장").Return(true, nil)

	removed, err := service.Remove(ctx, "user-1", "연향동", "연향 제1공영주차장")
	require.NoError(t, err)
	assert.True(t, removed)
	mockRepo.AssertExpectations(t)
}

func TestFavoriteService_List(t *testing.T) {
	mockRepo := new(MockFavoriteRepository)
	service := newTestFavoriteService(mockRepo)
	ctx := context.Background()

	favorites := []models.Favorite{
		{ID: uuid.New(), UserID: "user-1", DongName: "연향동", LotName: "연향 제1공영주차장"},
		{ID: uuid.New(), UserID: "user-1", DongName: "금곡동", LotName: "매산뜰 공영주차장"},
	}
	mockRepo.On("List", ctx, "user-1").Return(favorites, nil)

	got, err := service.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	mockRepo.AssertExpectations(t)
}

func TestFavoriteService_Clear(t *testing.T) {
	mockRepo := new(MockFavoriteRepository)
	service := newTestFavoriteService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Clear", ctx, "user-1").Return(3, nil)

	count, err := service.Clear(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	mockRepo.AssertExpectations(t)
}
