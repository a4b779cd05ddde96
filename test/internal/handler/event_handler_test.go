package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	cachemocks "go-doormint-ledger/internal/cache/mocks"
	"go-doormint-ledger/internal/handler"
	"go-doormint-ledger/internal/model"
	"go-doormint-ledger/internal/service/mocks"
	apperrors "go-doormint-ledger/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupEventTestRouter(mockService *mocks.MockEventService, mockSupply *cachemocks.MockRedisSupplyCache) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handler.CallerIdentity())

	eventHandler := handler.NewEventHandler(mockService, mockSupply)
	eventHandler.RegisterRoutes(router)

	return router
}

func TestCreateEvent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		mockSupply := cachemocks.NewMockRedisSupplyCache(t)
		router := setupEventTestRouter(mockService, mockSupply)

		createReq := model.CreateEventRequest{EventID: "ev", Capacity: 100, Organizer: "org-a"}
		now := time.Now().UTC()
		mockService.EXPECT().CreateEvent(mock.Anything, createReq).Return(&model.Event{
			ID:           "ev",
			Organizer:    "org-a",
			Capacity:     100,
			CreatedAt:    now,
			BurnDeadline: now.Add(model.BurnWindow),
		}, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/events", "org-a", createReq)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Failed - ErrEventExists", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		mockSupply := cachemocks.NewMockRedisSupplyCache(t)
		router := setupEventTestRouter(mockService, mockSupply)

		createReq := model.CreateEventRequest{EventID: "ev", Capacity: 100, Organizer: "org-a"}
		mockService.EXPECT().CreateEvent(mock.Anything, createReq).Return(nil, apperrors.ErrEventExists).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/events", "org-a", createReq)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Failed - BindingError", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		mockSupply := cachemocks.NewMockRedisSupplyCache(t)
		router := setupEventTestRouter(mockService, mockSupply)

		req := createJSONHTTPRequest("POST", "/api/v1/events", "org-a", InvalidJSON)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "CreateEvent")
	})
}

func TestGetEvent(t *testing.T) {
	t.Run("Failed - ErrEventNotFound", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		mockSupply := cachemocks.NewMockRedisSupplyCache(t)
		router := setupEventTestRouter(mockService, mockSupply)

		mockService.EXPECT().GetEvent(mock.Anything, "ghost").Return(nil, apperrors.ErrEventNotFound).Once()

		req := createHTTPRequest("GET", "/api/v1/events/ghost", "")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEventAnalytics(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		mockSupply := cachemocks.NewMockRedisSupplyCache(t)
		router := setupEventTestRouter(mockService, mockSupply)

		mockSupply.EXPECT().GetCounters(mock.Anything, "ev").Return(model.SupplyCounters{
			Capacity: 100,
			Minted:   40,
			Claimed:  25,
			Burned:   10,
		}, nil).Once()

		req := createHTTPRequest("GET", "/api/v1/events/ev/analytics", "")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"capacity":100,"minted":40,"claimed":25,"burned":10}`, w.Body.String())
	})

	t.Run("Failed - MissingMirror", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		mockSupply := cachemocks.NewMockRedisSupplyCache(t)
		router := setupEventTestRouter(mockService, mockSupply)

		mockSupply.EXPECT().GetCounters(mock.Anything, "ghost").Return(model.SupplyCounters{}, apperrors.ErrEventNotFound).Once()

		req := createHTTPRequest("GET", "/api/v1/events/ghost/analytics", "")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
