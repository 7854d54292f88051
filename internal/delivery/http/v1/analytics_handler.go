package v1

import (
	"hirewise-backend/internal/delivery/http/middleware"
	"hirewise-backend/internal/delivery/http/response"
	"hirewise-backend/internal/domain"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsUC domain.AnalyticsUsecase
}

func NewAnalyticsHandler(r *gin.RouterGroup, analyticsUC domain.AnalyticsUsecase) {
	handler := &AnalyticsHandler{analyticsUC: analyticsUC}

	analytics := r.Group("/analytics")
	analytics.Use(middleware.RequireRole(domain.RoleRecruiter, domain.RoleAdmin))
	{
		analytics.GET("/stats", handler.Stats)
		analytics.GET("/report", handler.ExportReport)
	}
}

// Stats godoc
// @Summary      Dashboard statistics
// @Description  Totals, average match score, top skills and breakdowns by department and status
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Stats}
// @Failure      403  {object}  response.Response
// @Router       /analytics/stats [get]
func (h *AnalyticsHandler) Stats(c *gin.Context) {
	response.Success(c, http.StatusOK, "Analytics stats", h.analyticsUC.Stats(c))
}

// ExportReport godoc
// @Summary      Export the jobs report
// @Description  Downloads every job with its application figures plus a summary, as Excel or CSV
// @Tags         analytics
// @Produce      application/octet-stream
// @Param        format  query     string  false  "Export format (xlsx, csv). Default: xlsx"
// @Success      200     {file}    binary
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Router       /analytics/report [get]
func (h *AnalyticsHandler) ExportReport(c *gin.Context) {
	format := c.DefaultQuery("format", domain.ReportFormatXLSX)

	data, filename, err := h.analyticsUC.ExportReport(c, format)
	if err != nil {
		c.Error(err)
		return
	}

	contentType := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if strings.EqualFold(format, domain.ReportFormatCSV) {
		contentType = "text/csv"
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}
