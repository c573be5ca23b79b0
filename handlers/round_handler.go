package handlers

import (
	"net/http"

	"github.com/Dosada05/tournament-day/services"
)

type RoundHandler struct {
	roundService services.RoundService
}

func NewRoundHandler(rs services.RoundService) *RoundHandler {
	return &RoundHandler{roundService: rs}
}

type roundPath struct {
	tournamentID, dayIndex, roundNumber int
}

func parseRoundPath(r *http.Request) (roundPath, error) {
	var p roundPath
	var err error
	if p.tournamentID, err = getIDFromURL(r, "tournamentID"); err != nil {
		return p, err
	}
	if p.dayIndex, err = getIndexFromURL(r, "dayIndex"); err != nil {
		return p, err
	}
	if p.roundNumber, err = getIDFromURL(r, "roundNumber"); err != nil {
		return p, err
	}
	return p, nil
}

// GenerateRound godoc
// @Summary Generate a round
// @Tags rounds
// @Description Forms the day's teams on round 1, pairs them and persists the games. Re-running a round replaces it.
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param dayIndex path int true "Zero-based day index"
// @Param roundNumber path int true "Round number, starting at 1"
// @Success 201 {object} services.RoundResult
// @Failure 400 {object} map[string]string "Invalid path or round request"
// @Failure 404 {object} map[string]string "Tournament not found"
// @Failure 409 {object} map[string]string "Teams not formed for this day"
// @Failure 422 {object} map[string]string "Not enough participants"
// @Failure 429 {object} map[string]string "Rate limited"
// @Security BearerAuth
// @Router /admin/tournaments/{tournamentID}/days/{dayIndex}/rounds/{roundNumber} [post]
func (h *RoundHandler) GenerateRound(w http.ResponseWriter, r *http.Request) {
	p, err := parseRoundPath(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.roundService.GenerateRound(r.Context(), p.tournamentID, p.dayIndex, p.roundNumber)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetRound godoc
// @Summary Show a generated round
// @Tags rounds
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param dayIndex path int true "Zero-based day index"
// @Param roundNumber path int true "Round number"
// @Success 200 {object} services.RoundView
// @Failure 404 {object} map[string]string "Round not generated"
// @Router /tournaments/{tournamentID}/days/{dayIndex}/rounds/{roundNumber} [get]
func (h *RoundHandler) GetRound(w http.ResponseWriter, r *http.Request) {
	p, err := parseRoundPath(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	view, err := h.roundService.GetRound(r.Context(), p.tournamentID, p.dayIndex, p.roundNumber)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, view, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
