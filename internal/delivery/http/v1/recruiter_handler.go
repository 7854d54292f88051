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

type RecruiterHandler struct {
	recruiterUC domain.RecruiterUsecase
}

// NewRecruiterHandler registers the admin-only recruiter routes
func NewRecruiterHandler(r *gin.RouterGroup, recruiterUC domain.RecruiterUsecase) {
	handler := &RecruiterHandler{recruiterUC: recruiterUC}

	recruiters := r.Group("/recruiters")
	recruiters.Use(middleware.RequireRole(domain.RoleAdmin))
	{
		recruiters.POST("", handler.Register)
		recruiters.GET("", handler.List)
	}
}

type RegisterRecruiterRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Company    string `json:"company"`
	Department string `json:"department"`
}

// RegisterRecruiter godoc
// @Summary      Register a recruiter
// @Description  Adds a recruiter account (admin only). The id is generated when omitted.
// @Tags         recruiters
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRecruiterRequest  true  "Recruiter"
// @Success      201   {object}  response.Response{data=domain.User}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /recruiters [post]
func (h *RecruiterHandler) Register(c *gin.Context) {
	var req RegisterRecruiterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Invalid request body", validation.FormatValidationErrors(err)...))
		return
	}

	recruiter, err := h.recruiterUC.RegisterRecruiter(c, domain.User{
		ID:         req.ID,
		Name:       req.Name,
		Email:      req.Email,
		Company:    req.Company,
		Department: req.Department,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Recruiter registered", recruiter)
}

// ListRecruiters godoc
// @Summary      List recruiters
// @Tags         recruiters
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.User}
// @Failure      403  {object}  response.Response
// @Router       /recruiters [get]
func (h *RecruiterHandler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, "Recruiter list", h.recruiterUC.ListRecruiters(c))
}
