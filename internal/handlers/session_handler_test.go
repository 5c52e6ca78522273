package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/geonjuring/parking-system/internal/logger"
	"github.com/geonjuring/parking-system/internal/middleware"
	"github.com/geonjuring/parking-system/internal/models"
	"github.com/geonjuring/parking-system/internal/repository"
	"github.com/geonjuring/parking-system/internal/services"
)

// MockSessionService is a mock implementation of services.SessionService for testing
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Start(ctx context.Context, userID, lotName string) (*models.ParkingSession, error) {
	args := m.Called(ctx, userID, lotName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ParkingSession), args.Error(1)
}

func (m *MockSessionService) Current(ctx context.Context, userID string) (*models.ParkingSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ParkingSession), args.Error(1)
}

func (m *MockSessionService) End(ctx context.Context, userID string) (*models.ParkingSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ParkingSession), args.Error(1)
}

func setupSessionTestRouter(handler *SessionHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	log := logger.New("test")
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))

	parking := router.Group("/api/v1/users/:user/parking")
	{
		parking.POST("", handler.Start)
		parking.GET("", handler.Current)
		parking.DELETE("", handler.End)
	}

	return router
}

func TestSessionHandler_Start(t *testing.T) {
	mockService := new(MockSessionService)
	router := setupSessionTestRouter(NewSessionHandler(mockService))

	expected := &models.ParkingSession{
		ID:        uuid.New(),
		UserID:    "user-1",
		DongName:  "연향동",
		LotName:   "연향 제1공영주차장",
		FeeInfo:   "30분당 500원",
		EnteredAt: time.Now(),
	}
	mockService.On("Start", mock.Anything, "user-1", "연향 제1공영주차장").Return(expected, nil)

	body, err := json.Marshal(StartParkingRequest{LotName: "연향 제1공영주차장"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/user-1/parking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var response SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotNil(t, response.Session)
	assert.Equal(t, "연향 제1공영주차장", response.Session.LotName)
	mockService.AssertExpectations(t)
}

func TestSessionHandler_Start_AlreadyParked(t *testing.T) {
	mockService := new(MockSessionService)
	router := setupSessionTestRouter(NewSessionHandler(mockService))

	mockService.On("Start", mock.Anything, "user-1", "연향 제1공영주차장").
		Return(nil, repository.ErrActiveSession)

	body, err := json.Marshal(StartParkingRequest{LotName: "연향 제1공영주차장"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/user-1/parking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSessionHandler_Start_UnknownLot(t *testing.T) {
	mockService := new(MockSessionService)
	router := setupSessionTestRouter(NewSessionHandler(mockService))

	mockService.On("Start", mock.Anything, "user-1", "없는주차장").
		Return(nil, services.ErrLotNotFound)

	body, err := json.Marshal(StartParkingRequest{LotName: "없는주차장"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/user-1/parking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionHandler_Start_MissingLotName(t *testing.T) {
	mockService := new(MockSessionService)
	router := setupSessionTestRouter(NewSessionHandler(mockService))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/user-1/parking", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Start")
}

func TestSessionHandler_Current(t *testing.T) {
	mockService := new(MockSessionService)
	router := setupSessionTestRouter(NewSessionHandler(mockService))

	session := &models.ParkingSession{
		ID:        uuid.New(),
		UserID:    "user-1",
		DongName:  "연향동",
		LotName:   "연향 제1공영주차장",
		EnteredAt: time.Now().Add(-30 * time.Minute),
	}
	mockService.On("Current", mock.Anything, "user-1").Return(session, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/user-1/parking", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotNil(t, response.Session)
	assert.Nil(t, response.Session.ExitedAt)
}

func TestSessionHandler_Current_NotParked(t *testing.T) {
	mockService := new(MockSessionService)
	router := setupSessionTestRouter(NewSessionHandler(mockService))

	mockService.On("Current", mock.Anything, "user-1").Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/user-1/parking", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionHandler_End(t *testing.T) {
	mockService := new(MockSessionService)
	router := setupSessionTestRouter(NewSessionHandler(mockService))

	exitedAt := time.Now()
	fee := 1500
	closed := &models.ParkingSession{
		ID:        uuid.New(),
		UserID:    "user-1",
		DongName:  "연향동",
		LotName:   "연향 제1공영주차장",
		EnteredAt: exitedAt.Add(-61 * time.Minute),
		ExitedAt:  &exitedAt,
		Fee:       &fee,
	}
	mockService.On("End", mock.Anything, "user-1").Return(closed, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/user-1/parking", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotNil(t, response.Session)
	require.NotNil(t, response.Session.Fee)
	assert.Equal(t, 1500, *response.Session.Fee)
}

func TestSessionHandler_End_NotParked(t *testing.T) {
	mockService := new(MockSessionService)
	router := setupSessionTestRouter(NewSessionHandler(mockService))

	mockService.On("End", mock.Anything, "user-1").Return(nil, repository.ErrNoActiveSession)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/user-1/parking", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
