package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRound(t *testing.T) {
	m := New()
	m.ObserveRound(OutcomeSuccess, 15*time.Millisecond)
	m.ObserveRound(OutcomeSuccess, 5*time.Millisecond)
	m.ObserveRound(OutcomeRejected, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.roundsGenerated.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.roundsGenerated.WithLabelValues(OutcomeRejected)))
}

func TestRecordGames(t *testing.T) {
	m := New()
	m.RecordGames(3, 2, 1)
	m.RecordGames(1, 0, 0)
	m.RecordRotationReset()

	assert.Equal(t, 4.0, testutil.ToFloat64(m.gamesCreated.WithLabelValues("normal")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.gamesCreated.WithLabelValues("power")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sitOuts))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rotationResets))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRound(OutcomeSuccess, time.Second)
		m.RecordGames(1, 1, 1)
		m.RecordRotationReset()
		m.RecordCheckIn()
		m.RecordDailyReset()
	})
}

func TestRegistryGathers(t *testing.T) {
	m := New()
	m.RecordCheckIn()
	families, err := m.Registry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["tournament_check_ins_total"])
	assert.True(t, names["go_goroutines"])
}
