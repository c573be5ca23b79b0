package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/tournament-day/middleware"
	"github.com/Dosada05/tournament-day/models"
	"github.com/Dosada05/tournament-day/services"
)

type GameHandler struct {
	gameService services.GameService
}

func NewGameHandler(gs services.GameService) *GameHandler {
	return &GameHandler{gameService: gs}
}

type submitScoreRequest struct {
	ScoreA *int `json:"score_a"`
	ScoreB *int `json:"score_b"`
}

// StartGame godoc
// @Summary Start a game
// @Tags games
// @Produce json
// @Param gameID path string true "Game ID (UUID)"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]string "Game is not upcoming"
// @Security BearerAuth
// @Router /admin/games/{gameID}/start [post]
func (h *GameHandler) StartGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := getUUIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	game, err := h.gameService.StartGame(r.Context(), gameID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"game": game}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// StartAllUpcoming godoc
// @Summary Start every upcoming game of a tournament
// @Tags games
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/tournaments/{tournamentID}/start-all [post]
func (h *GameHandler) StartAllUpcoming(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	started, endTime, err := h.gameService.StartAllUpcoming(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"started": started}
	if started > 0 {
		response["end_time"] = endTime
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SubmitScore godoc
// @Summary Submit a final score
// @Tags games
// @Accept json
// @Produce json
// @Param gameID path string true "Game ID (UUID)"
// @Param input body submitScoreRequest true "Scores"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Negative or missing score"
// @Failure 409 {object} map[string]string "Game already finalized"
// @Security BearerAuth
// @Router /games/{gameID}/submit [post]
func (h *GameHandler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	gameID, err := getUUIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input submitScoreRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.ScoreA == nil || input.ScoreB == nil {
		badRequestResponse(w, r, errors.New("score_a and score_b are required"))
		return
	}

	submittedBy, err := middleware.GetSubjectFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	game, err := h.gameService.SubmitScore(r.Context(), gameID, *input.ScoreA, *input.ScoreB, submittedBy)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"game": game}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateGame godoc
// @Summary Correct a game
// @Tags games
// @Description Admin override for status and scores. Scores without a status finalize the game.
// @Accept json
// @Produce json
// @Param gameID path string true "Game ID (UUID)"
// @Param input body services.UpdateGameInput true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/games/{gameID} [put]
func (h *GameHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := getUUIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateGameInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	game, err := h.gameService.UpdateGame(r.Context(), gameID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"game": game}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListGames godoc
// @Summary List a tournament's games
// @Tags games
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param status query string false "upcoming, active or finalized"
// @Success 200 {object} map[string]interface{}
// @Router /tournaments/{tournamentID}/games [get]
func (h *GameHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var status *models.GameStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := models.GameStatus(raw)
		if !s.Valid() {
			badRequestResponse(w, r, services.ErrInvalidGameStatus)
			return
		}
		status = &s
	}

	games, err := h.gameService.ListGames(r.Context(), tournamentID, status)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"games": games}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CurrentGame godoc
// @Summary Get the game a participant is playing or is about to play
// @Description Returns {"game": null} when nothing is scheduled for the participant.
// @Tags games
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param participantID path int true "Participant ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Participant not found"
// @Router /tournaments/{tournamentID}/participants/{participantID}/current-game [get]
func (h *GameHandler) CurrentGame(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	participantID, err := getIDFromURL(r, "participantID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	game, err := h.gameService.CurrentGame(r.Context(), tournamentID, participantID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"game": game}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
