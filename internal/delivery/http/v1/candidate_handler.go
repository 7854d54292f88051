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

type CandidateHandler struct {
	candidateUC   domain.CandidateUsecase
	applicationUC domain.ApplicationUsecase
	sessionUC     domain.SessionUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase, applicationUC domain.ApplicationUsecase, sessionUC domain.SessionUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC, applicationUC: applicationUC, sessionUC: sessionUC}

	candidates := r.Group("/candidates")
	{
		candidates.POST("", handler.Signup)
		candidates.GET("", middleware.RequireRole(domain.RoleRecruiter, domain.RoleAdmin), handler.List)
		candidates.GET("/:id", middleware.RequireRole(), handler.GetProfile)
		candidates.PATCH("/:id", middleware.RequireRole(), handler.UpdateProfile)
		candidates.GET("/:id/applications", middleware.RequireRole(), handler.GetApplications)
	}
}

// Signup godoc
// @Summary      Candidate signup
// @Description  Registers a candidate profile and logs the candidate in
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        body  body      domain.CandidateInput  true  "Profile"
// @Success      201   {object}  response.Response{data=domain.Candidate}
// @Failure      400   {object}  response.Response
// @Router       /candidates [post]
func (h *CandidateHandler) Signup(c *gin.Context) {
	var req domain.CandidateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Invalid request body", validation.FormatValidationErrors(err)...))
		return
	}

	candidate, err := h.candidateUC.RegisterCandidate(c, req)
	if err != nil {
		c.Error(err)
		return
	}

	user := domain.User{
		ID:              candidate.ID,
		Name:            candidate.Name,
		Email:           candidate.Email,
		Skills:          candidate.Skills,
		ExperienceLevel: candidate.ExperienceLevel,
		ResumeReference: candidate.ResumeReference,
	}
	if _, err := h.sessionUC.Login(c, user, domain.RoleCandidate); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Account created", candidate)
}

// ListCandidates godoc
// @Summary      List candidates
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Candidate}
// @Failure      403  {object}  response.Response
// @Router       /candidates [get]
func (h *CandidateHandler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, "Candidate list", h.candidateUC.ListCandidates(c))
}

// GetProfile godoc
// @Summary      Get candidate profile
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [get]
func (h *CandidateHandler) GetProfile(c *gin.Context) {
	if !h.canAccess(c) {
		return
	}

	candidate, err := h.candidateUC.GetCandidate(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate profile", candidate)
}

// UpdateProfile godoc
// @Summary      Update candidate profile
// @Description  Merge-patches the profile. Candidates may only edit themselves.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Candidate ID"
// @Param        body  body      domain.CandidatePatch  true  "Fields to change"
// @Success      200   {object}  response.Response{data=domain.Candidate}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /candidates/{id} [patch]
func (h *CandidateHandler) UpdateProfile(c *gin.Context) {
	if !h.canAccess(c) {
		return
	}

	var patch domain.CandidatePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.Validation("Invalid request body", validation.FormatValidationErrors(err)...))
		return
	}

	candidate, err := h.candidateUC.UpdateCandidate(c, c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", candidate)
}

// GetCandidateApplications godoc
// @Summary      List a candidate's applications
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      403  {object}  response.Response
// @Router       /candidates/{id}/applications [get]
func (h *CandidateHandler) GetApplications(c *gin.Context) {
	if !h.canAccess(c) {
		return
	}

	response.Success(c, http.StatusOK, "Candidate applications", h.applicationUC.GetApplicationsForCandidate(c, c.Param("id")))
}

// canAccess stops candidates from reading or editing other candidates.
func (h *CandidateHandler) canAccess(c *gin.Context) bool {
	role := domain.Role(c.GetString(string(domain.KeyUserRole)))
	if role == domain.RoleCandidate && c.Param("id") != c.GetString(string(domain.KeyUserID)) {
		c.Error(apperror.Forbidden("You can only access your own profile"))
		return false
	}
	return true
}
