package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sekolahvote/voting-portal/internal/api/metrics"
	"github.com/sekolahvote/voting-portal/internal/api/middleware"
	"github.com/sekolahvote/voting-portal/internal/core/domain"
	"github.com/sekolahvote/voting-portal/internal/core/ports"
)

// VotingHandler serves the session-gated voting page, ballot submission and
// results routes.
type VotingHandler struct {
	votingService ports.VotingService
	sessions      ports.SessionManager
}

func NewVotingHandler(votingService ports.VotingService, sessions ports.SessionManager) *VotingHandler {
	return &VotingHandler{votingService: votingService, sessions: sessions}
}

type ballotRequest struct {
	Female string `form:"female" validate:"omitempty,max=50"`
	Male   string `form:"male"   validate:"omitempty,max=50"`
}

type votingPageResponse struct {
	Candidates domain.Candidates `json:"candidates"`
	Flashes    []string          `json:"flashes,omitempty"`
}

// VotingPage handles GET /: the ballot form data plus any pending flashes.
func (h *VotingHandler) VotingPage(c echo.Context) error {
	token, _ := c.Get(middleware.KeyToken).(string)
	flashes, _ := h.sessions.PopFlashes(c.Request().Context(), token)

	return c.JSON(http.StatusOK, votingPageResponse{
		Candidates: h.votingService.Candidates(),
		Flashes:    flashes,
	})
}

// SubmitBallot handles POST /. Each category with a non-empty choice records
// one vote; submitting nothing records nothing. The voter lands on the
// results page either way.
func (h *VotingHandler) SubmitBallot(c echo.Context) error {
	var req ballotRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err := h.votingService.SubmitBallot(c.Request().Context(), ports.BallotInput{
		Female: req.Female,
		Male:   req.Male,
	})
	if err != nil {
		return err
	}

	if req.Female != "" {
		metrics.VotesCastTotal.WithLabelValues(string(domain.CategoryFemale)).Inc()
	}
	if req.Male != "" {
		metrics.VotesCastTotal.WithLabelValues(string(domain.CategoryMale)).Inc()
	}

	token, _ := c.Get(middleware.KeyToken).(string)
	_ = h.sessions.Flash(c.Request().Context(), token, "Thank you for voting!")

	return c.Redirect(http.StatusSeeOther, "/result")
}

// Results handles GET /result: the raw vote lists per category.
func (h *VotingHandler) Results(c echo.Context) error {
	results, err := h.votingService.Results(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, results)
}
