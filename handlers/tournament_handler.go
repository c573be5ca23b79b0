package handlers

import (
	"net/http"

	"github.com/Dosada05/tournament-day/services"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
}

func NewTournamentHandler(ts services.TournamentService) *TournamentHandler {
	return &TournamentHandler{tournamentService: ts}
}

type blackoutRequest struct {
	Blackout bool `json:"blackout"`
}

type checkInOpenRequest struct {
	Open bool `json:"open"`
}

// Create godoc
// @Summary Create a tournament
// @Tags tournaments
// @Accept json
// @Produce json
// @Param input body services.CreateTournamentInput true "Name and ISO dates"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Invalid name or dates"
// @Failure 409 {object} map[string]string "Another tournament is active or the name is taken"
// @Security BearerAuth
// @Router /admin/tournaments [post]
func (h *TournamentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateTournamentInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.tournamentService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetActive godoc
// @Summary Show the active tournament
// @Tags tournaments
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "No active tournament"
// @Router /tournaments/active [get]
func (h *TournamentHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	tournament, err := h.tournamentService.GetActive(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SetBlackout godoc
// @Summary Toggle blackout
// @Tags tournaments
// @Accept json
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param input body blackoutRequest true "Blackout flag"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/tournaments/{tournamentID}/blackout [post]
func (h *TournamentHandler) SetBlackout(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input blackoutRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.tournamentService.SetBlackout(r.Context(), tournamentID, input.Blackout)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SetCheckInOpen godoc
// @Summary Open or close check-in manually
// @Tags tournaments
// @Accept json
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param input body checkInOpenRequest true "Open flag"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/tournaments/{tournamentID}/check-in-open [post]
func (h *TournamentHandler) SetCheckInOpen(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input checkInOpenRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.tournamentService.SetCheckInOpen(r.Context(), tournamentID, input.Open)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
