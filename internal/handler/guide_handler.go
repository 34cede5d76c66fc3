package handler

import (
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/yatrika/service-planner/internal/application"
	"github.com/yatrika/service-planner/internal/response"
)

// GuideHandler handles HTTP requests for travel guide generation and download.
type GuideHandler struct {
	service *application.GuideService
}

// NewGuideHandler creates a new GuideHandler.
func NewGuideHandler(service *application.GuideService) *GuideHandler {
	return &GuideHandler{service: service}
}

// RegisterRoutes registers guide routes on the given router group.
func (h *GuideHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/generate-guide", h.GenerateGuide)
	r.GET("/download-guide/*filename", h.DownloadGuide)
}

// GenerateGuideRequest is the request body of POST /generate-guide.
type GenerateGuideRequest struct {
	DataFile string `json:"data_file" binding:"required"`
}

// GenerateGuideResponse is the response body of POST /generate-guide.
type GenerateGuideResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	PDFFile string `json:"pdf_file"`
}

// GenerateGuide handles POST /generate-guide.
func (h *GuideHandler) GenerateGuide(c *gin.Context) {
	var req GenerateGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	pdfFile, err := h.service.GenerateGuide(c.Request.Context(), req.DataFile)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, GenerateGuideResponse{
		Success: true,
		Message: "Travel guide generated successfully",
		PDFFile: pdfFile,
	})
}

// DownloadGuide handles GET /download-guide/*filename, accepting either a
// bare filename or one prefixed with the guide directory.
func (h *GuideHandler) DownloadGuide(c *gin.Context) {
	path, err := h.service.ResolveGuidePath(c.Param("filename"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.FileAttachment(path, filepath.Base(path))
}
