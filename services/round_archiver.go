package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/Dosada05/tournament-day/pairing"
	"github.com/Dosada05/tournament-day/storage"
)

type storageRoundArchiver struct {
	uploader storage.FileUploader
}

// NewStorageRoundArchiver writes rounds as JSON objects; a nil uploader disables archiving.
func NewStorageRoundArchiver(uploader storage.FileUploader) RoundArchiver {
	if uploader == nil {
		return noopArchiver{}
	}
	return &storageRoundArchiver{uploader: uploader}
}

func RoundArchiveKey(tournamentID, dayIndex, roundNumber int) string {
	return fmt.Sprintf("rounds/%d/day-%d/round-%d.json", tournamentID, dayIndex, roundNumber)
}

func (a *storageRoundArchiver) Archive(ctx context.Context, round *pairing.Round) (string, error) {
	body, err := json.Marshal(round)
	if err != nil {
		return "", fmt.Errorf("failed to encode round for archive: %w", err)
	}
	key := RoundArchiveKey(round.TournamentID, round.DayIndex, round.RoundNumber)
	res, err := a.uploader.Upload(ctx, key, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	return res.Location, nil
}
