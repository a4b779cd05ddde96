package handler

import (
	"errors"
	"net/http"

	"go-doormint-ledger/internal/model"
	"go-doormint-ledger/internal/service"
	apperrors "go-doormint-ledger/pkg/app_errors"
	"go-doormint-ledger/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TokenHandler struct {
	service service.TokenService
}

func NewTokenHandler(service service.TokenService) *TokenHandler {
	return &TokenHandler{service: service}
}

func (h *TokenHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("tokens", h.List)
		router.GET("tokens/:event_id", h.Get)
		router.POST("tokens", h.Create)
		router.POST("tokens/:event_id/mint", h.Mint)
		router.POST("tokens/:event_id/burn", h.Burn)
		router.GET("tokens/:event_id/stats", h.Stats)
	}
}

func (h *TokenHandler) Create(c *gin.Context) {
	var req model.CreateTokenRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	created, err := h.service.CreateEventToken(c, req, callerFrom(c))
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *TokenHandler) Get(c *gin.Context) {
	ledger, err := h.service.GetEventToken(c, c.Param("event_id"))
	if err != nil {
		h.handleError(c, err, "Get")
		return
	}
	c.JSON(http.StatusOK, ledger)
}

func (h *TokenHandler) List(c *gin.Context) {
	ledgers, err := h.service.ListEventTokens(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	total, err := h.service.GetTotalTokens(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "tokens": ledgers})
}

func (h *TokenHandler) Mint(c *gin.Context) {
	var req model.MintTokensRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	allocation, err := h.service.MintTokens(c, c.Param("event_id"), req.Attendee, req.Amount, callerFrom(c))
	if err != nil {
		h.handleError(c, err, "Mint")
		return
	}
	c.JSON(http.StatusCreated, allocation)
}

func (h *TokenHandler) Burn(c *gin.Context) {
	burned, err := h.service.BurnUnclaimed(c, c.Param("event_id"), callerFrom(c))
	if err != nil {
		h.handleError(c, err, "Burn")
		return
	}
	c.JSON(http.StatusOK, gin.H{"event_id": c.Param("event_id"), "burned": burned})
}

func (h *TokenHandler) Stats(c *gin.Context) {
	stats, err := h.service.GetStats(c, c.Param("event_id"))
	if err != nil {
		h.handleError(c, err, "Stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *TokenHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrTokenExists):
		log.Warn("Token already exists")
		c.JSON(http.StatusConflict, gin.H{"error": "Event token already exists"})
	case errors.Is(err, apperrors.ErrNotAuthorized):
		log.Warn("Not authorized")
		c.JSON(http.StatusForbidden, gin.H{"error": "Caller is not organizer or admin"})
	case errors.Is(err, apperrors.ErrTokenNotFound):
		log.Warn("Token not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event token not found"})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrAlreadyClaimed):
		log.Warn("Already claimed")
		c.JSON(http.StatusConflict, gin.H{"error": "Already claimed"})
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
