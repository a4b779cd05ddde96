package handler

import (
	"errors"
	"net/http"

	"go-doormint-ledger/internal/cache"
	"go-doormint-ledger/internal/model"
	"go-doormint-ledger/internal/service"
	apperrors "go-doormint-ledger/pkg/app_errors"
	"go-doormint-ledger/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EventHandler struct {
	service service.EventService
	supply  cache.RedisSupplyCache
}

func NewEventHandler(service service.EventService, supply cache.RedisSupplyCache) *EventHandler {
	return &EventHandler{service: service, supply: supply}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("events", h.List)
		router.GET("events/:event_id", h.Get)
		router.POST("events", h.Create)
		router.GET("events/:event_id/analytics", h.Analytics)
	}
}

func (h *EventHandler) Create(c *gin.Context) {
	var req model.CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	created, err := h.service.CreateEvent(c, req)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) Get(c *gin.Context) {
	event, err := h.service.GetEvent(c, c.Param("event_id"))
	if err != nil {
		h.handleError(c, err, "Get")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.ListEvents(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, events)
}

// Analytics 讀取 Redis 供給鏡像；非權威數據，可能落後一個佇列延遲
func (h *EventHandler) Analytics(c *gin.Context) {
	counters, err := h.supply.GetCounters(c, c.Param("event_id"))
	if err != nil {
		h.handleError(c, err, "Analytics")
		return
	}
	c.JSON(http.StatusOK, counters)
}

func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrEventExists):
		log.Warn("Event already exists")
		c.JSON(http.StatusConflict, gin.H{"error": "Event already exists"})
	case errors.Is(err, apperrors.ErrInvalidCapacity):
		log.Warn("Invalid capacity")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Capacity must be positive"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
