package handler

import (
	"log"
	"net/http"

	"github.com/ByPro8/PDF-SORTER/dto"
	"github.com/ByPro8/PDF-SORTER/service"

	"github.com/gin-gonic/gin"
)

type PipelineHandler struct {
	pipeline *service.PipelineService
}

func NewPipelineHandler(pipeline *service.PipelineService) *PipelineHandler {
	return &PipelineHandler{
		pipeline: pipeline,
	}
}

// RunPipeline handles the POST /pipeline/run endpoint
func (h *PipelineHandler) RunPipeline(c *gin.Context) {
	log.Println("Received pipeline run request")

	response, err := h.pipeline.Run()
	if err != nil {
		log.Printf("Error: pipeline run failed - %v", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "PIPELINE_FAILED",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	log.Printf("Pipeline completed: moved=%d deduped=%d sorted=%d",
		response.Moved, response.DuplicatesRemoved, response.Sorted)
	c.JSON(http.StatusOK, response)
}
