package handler

import (
	"errors"
	"net/http"
	"strconv"

	"go-doormint-ledger/internal/model"
	"go-doormint-ledger/internal/service"
	apperrors "go-doormint-ledger/pkg/app_errors"
	"go-doormint-ledger/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EntryHandler struct {
	service service.EntryService
}

func NewEntryHandler(service service.EntryService) *EntryHandler {
	return &EntryHandler{service: service}
}

func (h *EntryHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("events/:event_id/entries", h.Mint)
		router.GET("events/:event_id/entries", h.List)
		router.GET("events/:event_id/entries/:issuance_id", h.Get)
		router.PUT("events/:event_id/entries/:issuance_id/claim", h.Claim)
		router.POST("events/:event_id/burn", h.Burn)
		router.POST("events/:event_id/sweep", h.Sweep)
		router.GET("events/:event_id/supply", h.Supply)
		router.GET("events/:event_id/stats", h.Stats)
	}
}

func (h *EntryHandler) Mint(c *gin.Context) {
	var req model.MintEntryRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	issuance, err := h.service.MintEntry(c, c.Param("event_id"), req.Attendee, callerFrom(c))
	if err != nil {
		h.handleError(c, err, "Mint")
		return
	}
	c.JSON(http.StatusCreated, issuance)
}

func (h *EntryHandler) List(c *gin.Context) {
	issuances, err := h.service.ListIssuances(c, c.Param("event_id"))
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, issuances)
}

func (h *EntryHandler) Get(c *gin.Context) {
	issuanceID, err := strconv.ParseInt(c.Param("issuance_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issuance id"})
		return
	}
	issuance, err := h.service.GetIssuance(c, c.Param("event_id"), issuanceID)
	if err != nil {
		h.handleError(c, err, "Get")
		return
	}
	c.JSON(http.StatusOK, issuance)
}

func (h *EntryHandler) Claim(c *gin.Context) {
	issuanceID, err := strconv.ParseInt(c.Param("issuance_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issuance id"})
		return
	}
	err = h.service.MarkAsClaimed(c, c.Param("event_id"), issuanceID, callerFrom(c))
	if err != nil {
		h.handleError(c, err, "Claim")
		return
	}
	c.Status(http.StatusOK)
}

func (h *EntryHandler) Burn(c *gin.Context) {
	// body 可省略 = 掃除整個活動的發行清單
	var req model.BurnRequest
	if c.Request.ContentLength > 0 {
		if err := BindJson(c, &req); err != nil {
			return
		}
	}

	result, err := h.service.BurnUnclaimed(c, c.Param("event_id"), req.IssuanceIDs, callerFrom(c))
	if err != nil {
		h.handleError(c, err, "Burn")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *EntryHandler) Sweep(c *gin.Context) {
	err := h.service.RequestSweep(c, c.Param("event_id"), callerFrom(c))
	if err != nil {
		h.handleError(c, err, "Sweep")
		return
	}
	c.Status(http.StatusAccepted)
}

func (h *EntryHandler) Supply(c *gin.Context) {
	supply, err := h.service.GetTotalSupply(c, c.Param("event_id"))
	if err != nil {
		h.handleError(c, err, "Supply")
		return
	}
	c.JSON(http.StatusOK, gin.H{"event_id": c.Param("event_id"), "total_supply": supply})
}

func (h *EntryHandler) Stats(c *gin.Context) {
	stats, err := h.service.GetStats(c, c.Param("event_id"))
	if err != nil {
		h.handleError(c, err, "Stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *EntryHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrNotAuthorized):
		log.Warn("Not authorized")
		c.JSON(http.StatusForbidden, gin.H{"error": "Caller is not organizer or admin"})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrIssuanceNotFound):
		log.Warn("Issuance not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Issuance not found"})
	case errors.Is(err, apperrors.ErrSoldOut):
		log.Warn("Capacity exhausted")
		c.JSON(http.StatusConflict, gin.H{"error": "Event capacity exhausted"})
	case errors.Is(err, apperrors.ErrAlreadyClaimed):
		log.Warn("Already claimed")
		c.JSON(http.StatusConflict, gin.H{"error": "Already claimed"})
	case errors.Is(err, apperrors.ErrAlreadyBurned):
		log.Warn("Already burned")
		c.JSON(http.StatusConflict, gin.H{"error": "Issuance already burned"})
	case errors.Is(err, apperrors.ErrBurnNotOpen):
		log.Warn("Burn window not open")
		c.JSON(http.StatusConflict, gin.H{"error": "Burn window not open yet"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
