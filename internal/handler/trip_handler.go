package handler

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yatrika/service-planner/internal/application"
	"github.com/yatrika/service-planner/internal/response"
)

// TripHandler handles HTTP requests for trip planning and map retrieval.
type TripHandler struct {
	service *application.PlannerService
	mapDir  string
}

// NewTripHandler creates a new TripHandler. Map files are served from mapDir.
func NewTripHandler(service *application.PlannerService, mapDir string) *TripHandler {
	return &TripHandler{service: service, mapDir: mapDir}
}

// RegisterRoutes registers trip routes on the given router group.
func (h *TripHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/plan-trip", h.PlanTrip)
	r.GET("/map/:filename", h.GetMap)
}

// PlanTripResponse is the response body of POST /plan-trip.
type PlanTripResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	DataFile    string `json:"data_file,omitempty"`
	MapFile     string `json:"map_file,omitempty"`
	RoutesFound int    `json:"routes_found"`
}

// PlanTrip handles POST /plan-trip.
func (h *TripHandler) PlanTrip(c *gin.Context) {
	var req application.PlanTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.PlanTrip(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, PlanTripResponse{
		Success:     true,
		Message:     "Trip planned successfully",
		DataFile:    result.DataFile,
		MapFile:     result.MapFile,
		RoutesFound: result.RoutesFound,
	})
}

// GetMap handles GET /map/:filename, serving the generated map HTML.
// A missing ".html" extension is appended.
func (h *TripHandler) GetMap(c *gin.Context) {
	filename := filepath.Base(c.Param("filename"))
	if !strings.HasSuffix(filename, ".html") {
		filename += ".html"
	}

	content, err := os.ReadFile(filepath.Join(h.mapDir, filename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			response.NotFound(c, "map file not found")
			return
		}
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", content)
}
