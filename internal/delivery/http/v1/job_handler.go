package v1

import (
	"cmp"
	"hirewise-backend/internal/delivery/http/middleware"
	"hirewise-backend/internal/delivery/http/response"
	"hirewise-backend/internal/domain"
	"hirewise-backend/pkg/apperror"
	"hirewise-backend/pkg/validation"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC         domain.JobUsecase
	applicationUC domain.ApplicationUsecase
	sessionUC     domain.SessionUsecase
}

func NewJobHandler(r *gin.RouterGroup, jobUC domain.JobUsecase, applicationUC domain.ApplicationUsecase, sessionUC domain.SessionUsecase) {
	handler := &JobHandler{jobUC: jobUC, applicationUC: applicationUC, sessionUC: sessionUC}

	staff := middleware.RequireRole(domain.RoleRecruiter, domain.RoleAdmin)

	jobs := r.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/:id", handler.GetDetails)
		jobs.POST("", staff, handler.Create)
		jobs.PATCH("/:id", staff, handler.Update)
		jobs.DELETE("/:id", staff, handler.Delete)

		jobs.POST("/:id/apply", middleware.RequireRole(domain.RoleCandidate), handler.Apply)
		jobs.GET("/:id/applications", staff, handler.ListApplications)
	}
}

// CreateJob godoc
// @Summary      Create a new job
// @Description  Create a new job posting (recruiter or admin). Status defaults to active.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      domain.JobInput  true  "Job JSON"
// @Success      201  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req domain.JobInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Invalid request body", validation.FormatValidationErrors(err)...))
		return
	}

	// The poster is always the session user
	req.CreatedBy = c.GetString(string(domain.KeyUserID))

	job, err := h.jobUC.CreateJob(c, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// ListJobs godoc
// @Summary      List jobs
// @Description  Lists jobs in creation order, optionally filtered
// @Tags         jobs
// @Produce      json
// @Param        department  query     string  false  "Department substring (case-insensitive)"
// @Param        skill       query     string  false  "Skill substring (case-insensitive)"
// @Param        status      query     string  false  "active, closed or draft"
// @Success      200         {object}  response.Response{data=[]domain.Job}
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	filter := domain.JobFilter{
		Department: c.Query("department"),
		Skill:      c.Query("skill"),
		Status:     domain.JobStatus(c.Query("status")),
	}

	jobs := h.jobUC.ListJobs(c, filter)
	response.Success(c, http.StatusOK, "Job list", gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

// GetJobDetails godoc
// @Summary      Get job details
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	job, err := h.jobUC.GetJob(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

// UpdateJob godoc
// @Summary      Update a job
// @Description  Merge-patches a job: only the fields present in the body change
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Job ID"
// @Param        body  body      domain.JobPatch  true  "Fields to change"
// @Success      200   {object}  response.Response{data=domain.Job}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /jobs/{id} [patch]
func (h *JobHandler) Update(c *gin.Context) {
	var patch domain.JobPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.Validation("Invalid request body", validation.FormatValidationErrors(err)...))
		return
	}

	job, err := h.jobUC.UpdateJob(c, c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

// DeleteJob godoc
// @Summary      Delete a job
// @Description  Permanently deletes a job posting together with its applications
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobUC.DeleteJob(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted successfully", nil)
}

// ApplyToJobRequest is the optional body of an application. Everything else
// comes from the candidate's session.
type ApplyToJobRequest struct {
	ResumeReference *string `json:"resumeReference"`
}

// ApplyToJob godoc
// @Summary      Apply to a job
// @Description  Submits an application for the logged-in candidate. Repeat applications are accepted.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      string             true   "Job ID"
// @Param        body  body      ApplyToJobRequest  false  "Resume reference"
// @Success      201   {object}  response.Response{data=domain.Application}
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /jobs/{id}/apply [post]
func (h *JobHandler) Apply(c *gin.Context) {
	var req ApplyToJobRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.Validation("Invalid request body", validation.FormatValidationErrors(err)...))
			return
		}
	}

	sess := h.sessionUC.CurrentSession(c)
	if !sess.Active() {
		c.Error(apperror.Unauthorized("Login required"))
		return
	}

	info := domain.CandidateInfo{
		ID:              sess.User.ID,
		Name:            sess.User.Name,
		Email:           sess.User.Email,
		ResumeReference: sess.User.ResumeReference,
		Skills:          sess.User.Skills,
	}
	if req.ResumeReference != nil {
		info.ResumeReference = req.ResumeReference
	}

	app, err := h.applicationUC.ApplyToJob(c, c.Param("id"), info)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// ListJobApplications godoc
// @Summary      List applications for a job
// @Description  Submission order by default; sort=match_score ranks best matches first
// @Tags         applications
// @Produce      json
// @Param        id    path      string  true   "Job ID"
// @Param        sort  query     string  false  "match_score"
// @Success      200   {object}  response.Response{data=[]domain.Application}
// @Failure      404   {object}  response.Response
// @Router       /jobs/{id}/applications [get]
func (h *JobHandler) ListApplications(c *gin.Context) {
	jobID := c.Param("id")
	if _, err := h.jobUC.GetJob(c, jobID); err != nil {
		c.Error(err)
		return
	}

	apps := h.applicationUC.GetApplicationsForJob(c, jobID)
	if c.Query("sort") == "match_score" {
		slices.SortStableFunc(apps, func(a, b domain.Application) int {
			return cmp.Compare(b.MatchScore, a.MatchScore)
		})
	}

	response.Success(c, http.StatusOK, "Job applications", apps)
}
