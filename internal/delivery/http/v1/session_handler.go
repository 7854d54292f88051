package v1

import (
	"hirewise-backend/internal/delivery/http/response"
	"hirewise-backend/internal/domain"
	"hirewise-backend/pkg/apperror"
	"hirewise-backend/pkg/validation"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SessionHandler struct {
	sessionUC   domain.SessionUsecase
	candidateUC domain.CandidateUsecase
	recruiterUC domain.RecruiterUsecase
}

func NewSessionHandler(r *gin.RouterGroup, loginLimit gin.HandlerFunc, sessionUC domain.SessionUsecase, candidateUC domain.CandidateUsecase, recruiterUC domain.RecruiterUsecase) {
	handler := &SessionHandler{sessionUC: sessionUC, candidateUC: candidateUC, recruiterUC: recruiterUC}

	session := r.Group("/session")
	{
		session.POST("", loginLimit, handler.Login)
		session.GET("", handler.Current)
		session.DELETE("", handler.Logout)
	}
}

type LoginRequest struct {
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required"`
	Role     domain.Role `json:"role" binding:"required,oneof=candidate recruiter admin"`
}

// Login godoc
// @Summary      Start a session
// @Description  Logs in as candidate, recruiter or admin. Any non-empty password is accepted; registered candidates and recruiters are matched by email.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  response.Response{data=domain.Session}
// @Failure      400   {object}  response.Response
// @Failure      429   {object}  response.Response
// @Router       /session [post]
func (h *SessionHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Please provide valid credentials", validation.FormatValidationErrors(err)...))
		return
	}

	user := h.principalFor(c, req.Email, req.Role)

	sess, err := h.sessionUC.Login(c, user, req.Role)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Logged in", sess)
}

// principalFor resolves the user record behind an email. Unknown emails get
// a fresh principal named after the mailbox.
func (h *SessionHandler) principalFor(c *gin.Context, email string, role domain.Role) domain.User {
	email = strings.TrimSpace(email)

	switch role {
	case domain.RoleCandidate:
		for _, cand := range h.candidateUC.ListCandidates(c) {
			if strings.EqualFold(cand.Email, email) {
				return domain.User{
					ID:              cand.ID,
					Name:            cand.Name,
					Email:           cand.Email,
					Skills:          cand.Skills,
					ExperienceLevel: cand.ExperienceLevel,
					ResumeReference: cand.ResumeReference,
				}
			}
		}
	case domain.RoleRecruiter:
		for _, rec := range h.recruiterUC.ListRecruiters(c) {
			if strings.EqualFold(rec.Email, email) {
				return rec
			}
		}
	}

	user := domain.User{
		ID:    uuid.NewString(),
		Name:  mailboxName(email),
		Email: email,
	}
	if role == domain.RoleAdmin {
		user.Permissions = []string{"all"}
	}
	return user
}

// mailboxName turns "jane_doe+jobs@x.io" into "jane doe jobs".
func mailboxName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-' || r == '\'' {
			return r
		}
		return ' '
	}, local)
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return "User"
	}
	return name
}

// CurrentSession godoc
// @Summary      Current session
// @Description  Returns the logged-in principal, or a null user when logged out
// @Tags         session
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Session}
// @Router       /session [get]
func (h *SessionHandler) Current(c *gin.Context) {
	response.Success(c, http.StatusOK, "Current session", h.sessionUC.CurrentSession(c))
}

// Logout godoc
// @Summary      End the session
// @Description  Clears the session. Safe to call when already logged out.
// @Tags         session
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Session}
// @Router       /session [delete]
func (h *SessionHandler) Logout(c *gin.Context) {
	response.Success(c, http.StatusOK, "Logged out", h.sessionUC.Logout(c))
}
