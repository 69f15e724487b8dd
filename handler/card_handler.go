package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/receiptstack/receipt-extraction/dto"
	"github.com/receiptstack/receipt-extraction/registry"
)

type CardHandler struct {
	cards *registry.Service
	log   zerolog.Logger
}

func NewCardHandler(cards *registry.Service, log zerolog.Logger) *CardHandler {
	return &CardHandler{
		cards: cards,
		log:   log,
	}
}

// Add handles POST /cards
func (h *CardHandler) Add(c *gin.Context) {
	var request dto.AddCardRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, "last_four is required", err)
		return
	}
	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	card, err := h.cards.AddCard(request.LastFour, request.Entity, request.CardType, request.Bank)
	if err != nil {
		if errors.Is(err, registry.ErrDuplicateCard) {
			h.sendError(c, http.StatusConflict, err.Error(), err)
			return
		}
		h.sendError(c, http.StatusInternalServerError, "failed to register card", err)
		return
	}

	c.JSON(http.StatusCreated, card)
}

// List handles GET /cards
func (h *CardHandler) List(c *gin.Context) {
	cards, err := h.cards.ListCards()
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "failed to list cards", err)
		return
	}

	c.JSON(http.StatusOK, dto.CardListResponse{Cards: cards})
}

// Remove handles DELETE /cards/:id
func (h *CardHandler) Remove(c *gin.Context) {
	id := c.Param("id")
	if err := h.cards.RemoveCard(id); err != nil {
		if errors.Is(err, registry.ErrCardNotFound) {
			h.sendError(c, http.StatusNotFound, err.Error(), err)
			return
		}
		h.sendError(c, http.StatusInternalServerError, "failed to remove card", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Toggle handles POST /cards/:id/toggle
func (h *CardHandler) Toggle(c *gin.Context) {
	id := c.Param("id")
	card, err := h.cards.ToggleActive(id)
	if err != nil {
		if errors.Is(err, registry.ErrCardNotFound) {
			h.sendError(c, http.StatusNotFound, err.Error(), err)
			return
		}
		h.sendError(c, http.StatusInternalServerError, "failed to toggle card", err)
		return
	}

	c.JSON(http.StatusOK, card)
}

func (h *CardHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		h.log.Error().Err(err).Msg(message)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "CARD_REGISTRY_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
