package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Dosada05/tournament-day/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type StandingsHandler struct {
	standingsService services.StandingsService
}

func NewStandingsHandler(ss services.StandingsService) *StandingsHandler {
	return &StandingsHandler{standingsService: ss}
}

// Standings godoc
// @Summary Leaderboard
// @Tags standings
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Success 200 {object} map[string]interface{}
// @Router /tournaments/{tournamentID}/standings [get]
func (h *StandingsHandler) Standings(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	standings, err := h.standingsService.Standings(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ExportXLSX godoc
// @Summary Leaderboard as a spreadsheet
// @Tags standings
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param tournamentID path int true "Tournament ID"
// @Success 200 {file} file
// @Router /tournaments/{tournamentID}/standings.xlsx [get]
func (h *StandingsHandler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	// Buffered so a failed export can still be answered with a JSON error.
	var buf bytes.Buffer
	if err := h.standingsService.ExportXLSX(r.Context(), tournamentID, &buf); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("standings-%d.xlsx", tournamentID)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
