package main

import (
	"log"
	"os"

	"github.com/ByPro8/PDF-SORTER/client"
	"github.com/ByPro8/PDF-SORTER/config"
	"github.com/ByPro8/PDF-SORTER/handler"
	"github.com/ByPro8/PDF-SORTER/service"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// VERY IMPORTANT: gosseract reads TESSDATA_PREFIX from the environment too
	os.Setenv("TESSDATA_PREFIX", cfg.TesseractDataPath)
	log.Println("TESSDATA_PREFIX set to:", os.Getenv("TESSDATA_PREFIX"))

	// Detection rules are static; refuse to start on an ambiguous table
	rules := config.DefaultRules()
	if err := config.ValidateRules(rules); err != nil {
		log.Fatalf("Invalid detection rules: %v", err)
	}

	// Initialize Tesseract client
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath, cfg.OCRLanguage)
	defer tesseractClient.Close()

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	detector := service.NewBankDetector(pdfProcessor, tesseractClient, rules, cfg.MaxTextPages)
	sorter := service.NewSorterService(detector)
	dedup := service.NewDedupService(true)
	pipeline := service.NewPipelineService(sorter, dedup, cfg.InboxDir, cfg.ArchiveDir, cfg.SortedDir)

	// Initialize handler layer
	classifyHandler := handler.NewClassifyHandler(detector)
	pipelineHandler := handler.NewPipelineHandler(pipeline)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory
	router.MaxMultipartMemory = cfg.MaxFileSize

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Bank Receipt Sorter",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		receipts := api.Group("/receipts")
		{
			receipts.POST("/classify", classifyHandler.ClassifyReceipt)
		}
		pipelineGroup := api.Group("/pipeline")
		{
			pipelineGroup.POST("/run", pipelineHandler.RunPipeline)
		}
	}

	// Start server
	log.Printf("Starting Bank Receipt Sorter on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
