package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/receiptstack/receipt-extraction/dto"
	"github.com/receiptstack/receipt-extraction/service"
)

type AnnotationHandler struct {
	annotationService *service.AnnotationService
	log               zerolog.Logger
}

func NewAnnotationHandler(annotationService *service.AnnotationService, log zerolog.Logger) *AnnotationHandler {
	return &AnnotationHandler{
		annotationService: annotationService,
		log:               log,
	}
}

// Resolve handles POST /annotations/resolve. The client calls this on every
// transcript update; a missing card match is a normal outcome, while a
// registry failure is a 500.
func (h *AnnotationHandler) Resolve(c *gin.Context) {
	var request dto.ResolveAnnotationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, "transcript is required", err)
		return
	}

	result, err := h.annotationService.Resolve(request.Transcript)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "card registry unavailable", err)
		return
	}

	c.JSON(http.StatusOK, dto.ResolveAnnotationResponse{Result: result})
}

// Candidates handles POST /annotations/candidates for the disambiguation UI.
func (h *AnnotationHandler) Candidates(c *gin.Context) {
	var request dto.ResolveAnnotationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, "transcript is required", err)
		return
	}

	candidates, err := h.annotationService.Candidates(request.Transcript)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "card registry unavailable", err)
		return
	}

	c.JSON(http.StatusOK, dto.CandidateCardsResponse{Candidates: candidates})
}

func (h *AnnotationHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		h.log.Error().Err(err).Msg(message)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "ANNOTATION_RESOLVE_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
