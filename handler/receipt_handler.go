package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/receiptstack/receipt-extraction/dto"
	"github.com/receiptstack/receipt-extraction/service"
)

type ReceiptHandler struct {
	receiptService *service.ReceiptService
	log            zerolog.Logger
}

func NewReceiptHandler(receiptService *service.ReceiptService, log zerolog.Logger) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		log:            log,
	}
}

// ParseText handles POST /receipts/parse: already-recognized text in,
// extracted fields out.
func (h *ReceiptHandler) ParseText(c *gin.Context) {
	var request dto.ParseReceiptRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, "text is required", err)
		return
	}

	c.JSON(http.StatusOK, h.receiptService.ParseText(request.Text))
}

// Scan handles POST /receipts/scan: a multipart image or PDF upload is
// recognized and parsed in one step.
func (h *ReceiptHandler) Scan(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "file is required", err)
		return
	}

	result, err := h.receiptService.ScanUpload(fileHeader)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "failed to scan receipt", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ReceiptHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		h.log.Error().Err(err).Msg(message)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "RECEIPT_PARSE_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
