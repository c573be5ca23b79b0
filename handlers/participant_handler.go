package handlers

import (
	"net/http"

	"github.com/Dosada05/tournament-day/services"
)

type ParticipantHandler struct {
	rosterService services.RosterService
}

func NewParticipantHandler(rs services.RosterService) *ParticipantHandler {
	return &ParticipantHandler{rosterService: rs}
}

type registerProxyRequest struct {
	Name    string `json:"name"`
	IsPower bool   `json:"is_power"`
}

type checkInRequest struct {
	CheckedIn bool `json:"checked_in"`
}

type powerFlagRequest struct {
	IsPower bool `json:"is_power"`
}

// RegisterProxy godoc
// @Summary Register a walk-up participant
// @Tags participants
// @Accept json
// @Produce json
// @Param input body registerProxyRequest true "Participant"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Missing or too long name"
// @Security BearerAuth
// @Router /admin/participants [post]
func (h *ParticipantHandler) RegisterProxy(w http.ResponseWriter, r *http.Request) {
	var input registerProxyRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	participant, err := h.rosterService.RegisterProxy(r.Context(), input.Name, input.IsPower)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"participant": participant}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CheckIn godoc
// @Summary Check a participant in or out
// @Tags participants
// @Accept json
// @Produce json
// @Param participantID path int true "Participant ID"
// @Param input body checkInRequest true "Presence"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string "Check-in window closed"
// @Security BearerAuth
// @Router /admin/participants/{participantID}/check-in [post]
func (h *ParticipantHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	participantID, err := getIDFromURL(r, "participantID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input checkInRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	participant, err := h.rosterService.CheckIn(r.Context(), participantID, input.CheckedIn)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"participant": participant}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SetPower godoc
// @Summary Flag or unflag a power player
// @Tags participants
// @Accept json
// @Produce json
// @Param participantID path int true "Participant ID"
// @Param input body powerFlagRequest true "Power flag"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/participants/{participantID}/power [post]
func (h *ParticipantHandler) SetPower(w http.ResponseWriter, r *http.Request) {
	participantID, err := getIDFromURL(r, "participantID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input powerFlagRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	participant, err := h.rosterService.SetPowerFlag(r.Context(), participantID, input.IsPower)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"participant": participant}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// List godoc
// @Summary List participants
// @Tags participants
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/participants [get]
func (h *ParticipantHandler) List(w http.ResponseWriter, r *http.Request) {
	participants, err := h.rosterService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	open, err := h.rosterService.CheckInOpen(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"participants": participants, "check_in_open": open}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
