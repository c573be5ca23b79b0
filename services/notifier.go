package services

import (
	"context"

	"github.com/Dosada05/tournament-day/pairing"
)

//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks

// Notifier pushes events to a tournament's live clients. Delivery is best effort.
type Notifier interface {
	Publish(ctx context.Context, tournamentID int, event string, payload interface{}) error
}

// RoundArchiver stores a generated round outside the database.
type RoundArchiver interface {
	Archive(ctx context.Context, round *pairing.Round) (string, error)
}

type noopNotifier struct{}

func (noopNotifier) Publish(context.Context, int, string, interface{}) error { return nil }

type noopArchiver struct{}

func (noopArchiver) Archive(context.Context, *pairing.Round) (string, error) { return "", nil }
