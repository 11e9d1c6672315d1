package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// mockRevocationStore records Purge calls
type mockRevocationStore struct {
	purged  int
	err     error
	calls   int
	gotTime time.Time
}

func (m *mockRevocationStore) Revoke(ctx context.Context, jti string, userID int, expiresAt time.Time) error {
	return nil
}

func (m *mockRevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return false, nil
}

func (m *mockRevocationStore) Purge(ctx context.Context, now time.Time) (int, error) {
	m.calls++
	m.gotTime = now
	return m.purged, m.err
}

func TestNewTokenPurger(t *testing.T) {
	tests := []struct {
		name          string
		schedule      string
		expectedError bool
	}{
		{name: "descriptor", schedule: "@hourly"},
		{name: "every interval", schedule: "@every 30m"},
		{name: "standard expression", schedule: "0 * * * *"},
		{name: "invalid expression", schedule: "every hour", expectedError: true},
		{name: "empty", schedule: "", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewTokenPurger(&mockRevocationStore{}, tt.schedule, zap.NewNop())

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, p)
			} else {
				require.NoError(t, err)
				assert.Len(t, p.cron.Entries(), 1)
			}
		})
	}
}

func TestTokenPurger_Purge(t *testing.T) {
	fixed := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		store := &mockRevocationStore{purged: 4}
		p, err := NewTokenPurger(store, "@hourly", zap.NewNop())
		require.NoError(t, err)
		p.now = func() time.Time { return fixed }

		purged, err := p.Purge(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 4, purged)
		assert.Equal(t, fixed, store.gotTime)
	})

	t.Run("store error", func(t *testing.T) {
		store := &mockRevocationStore{err: errors.New("database error")}
		p, err := NewTokenPurger(store, "@hourly", zap.NewNop())
		require.NoError(t, err)

		purged, err := p.Purge(context.Background())

		assert.Error(t, err)
		assert.Zero(t, purged)
	})
}

func TestTokenPurger_RunLogsOutcome(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	store := &mockRevocationStore{purged: 2}
	p, err := NewTokenPurger(store, "@hourly", zap.New(core))
	require.NoError(t, err)

	p.run()
	store.err = errors.New("database error")
	p.run()

	assert.Equal(t, 2, store.calls)
	assert.Equal(t, 1, logs.FilterMessage("Scheduled token purge completed").Len())
	assert.Equal(t, 1, logs.FilterMessage("Scheduled token purge failed").Len())
}

func TestTokenPurger_StartStop(t *testing.T) {
	p, err := NewTokenPurger(&mockRevocationStore{}, "@hourly", zap.NewNop())
	require.NoError(t, err)

	p.Start()
	p.Stop()
}
