package main

import (
	"github.com/gin-gonic/gin"

	"github.com/receiptstack/receipt-extraction/client"
	"github.com/receiptstack/receipt-extraction/config"
	"github.com/receiptstack/receipt-extraction/handler"
	"github.com/receiptstack/receipt-extraction/logger"
	"github.com/receiptstack/receipt-extraction/registry"
	"github.com/receiptstack/receipt-extraction/service"
	"github.com/receiptstack/receipt-extraction/utils"
)

func main() {
	log := logger.New()

	cfg := config.LoadConfig()

	store, err := registry.NewBoltStore(cfg.RegistryDBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.RegistryDBPath).Msg("failed to open card registry")
	}
	defer store.Close()

	cardRegistry := registry.NewService(store, log)

	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
	pdfProcessor := service.NewPDFProcessor()
	receiptParser := utils.NewReceiptParser()

	receiptService := service.NewReceiptService(receiptParser, tesseractClient, pdfProcessor, log)
	annotationService := service.NewAnnotationService(cardRegistry, log)

	receiptHandler := handler.NewReceiptHandler(receiptService, log)
	annotationHandler := handler.NewAnnotationHandler(annotationService, log)
	cardHandler := handler.NewCardHandler(cardRegistry, log)

	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxFileSize

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Receipt Field Extraction",
		})
	})

	api := router.Group("/api/v1")
	{
		receipts := api.Group("/receipts")
		{
			receipts.POST("/parse", receiptHandler.ParseText)
			receipts.POST("/scan", receiptHandler.Scan)
		}

		annotations := api.Group("/annotations")
		{
			annotations.POST("/resolve", annotationHandler.Resolve)
			annotations.POST("/candidates", annotationHandler.Candidates)
		}

		cards := api.Group("/cards")
		{
			cards.POST("", cardHandler.Add)
			cards.GET("", cardHandler.List)
			cards.DELETE("/:id", cardHandler.Remove)
			cards.POST("/:id/toggle", cardHandler.Toggle)
		}
	}

	log.Info().Str("port", cfg.ServerPort).Msg("starting receipt extraction service")
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
