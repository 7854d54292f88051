package v1

import (
	"hirewise-backend/internal/delivery/http/middleware"
	"hirewise-backend/internal/delivery/http/response"
	"hirewise-backend/internal/domain"
	"hirewise-backend/pkg/apperror"
	"hirewise-backend/pkg/validation"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := r.Group("/applications")
	{
		applications.GET("/:id", middleware.RequireRole(), handler.GetApplicationDetail)
		applications.PATCH("/:id", middleware.RequireRole(domain.RoleRecruiter, domain.RoleAdmin), handler.UpdateApplicationStatus)
	}
}

// GetApplicationDetail godoc
// @Summary      Get application detail
// @Description  Candidates may only read their own applications
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  response.Response{data=domain.Application}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [get]
func (h *ApplicationHandler) GetApplicationDetail(c *gin.Context) {
	app, err := h.applicationUC.GetApplication(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	role := domain.Role(c.GetString(string(domain.KeyUserRole)))
	if role == domain.RoleCandidate && app.CandidateID != c.GetString(string(domain.KeyUserID)) {
		c.Error(apperror.Forbidden("You can only view your own applications"))
		return
	}

	response.Success(c, http.StatusOK, "Application detail", app)
}

// UpdateApplicationStatus godoc
// @Summary      Move an application through the funnel
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Application ID"
// @Param        body  body      domain.ApplicationPatch  true  "New status"
// @Success      200   {object}  response.Response{data=domain.Application}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications/{id} [patch]
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	var patch domain.ApplicationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.Validation("Invalid request body", validation.FormatValidationErrors(err)...))
		return
	}
	if patch.Status == nil {
		c.Error(apperror.Validation("Invalid request body", "Status: is required"))
		return
	}

	app, err := h.applicationUC.UpdateApplication(c, c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", app)
}
