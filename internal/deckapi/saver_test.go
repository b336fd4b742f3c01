package deckapi

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type saveRecorder struct {
	mu    sync.Mutex
	saves []Deck
}

func (r *saveRecorder) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var deck Deck
		if err := json.NewDecoder(req.Body).Decode(&deck); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		r.mu.Lock()
		r.saves = append(r.saves, deck)
		r.mu.Unlock()
		json.NewEncoder(w).Encode(deck)
	}
}

func (r *saveRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.saves)
}

func (r *saveRecorder) last() Deck {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves[len(r.saves)-1]
}

func TestSaverCoalescesBurst(t *testing.T) {
	recorder := &saveRecorder{}
	client := testServer(t, recorder.handler())
	saver := NewSaver(client, 20*time.Millisecond, zap.NewNop())
	defer saver.Stop()

	saver.Schedule(Deck{ID: "d1", Name: "rev 1"})
	saver.Schedule(Deck{ID: "d1", Name: "rev 2"})
	saver.Schedule(Deck{ID: "d1", Name: "rev 3"})

	assert.Eventually(t, func() bool { return recorder.count() == 1 },
		time.Second, 5*time.Millisecond)
	assert.Equal(t, "rev 3", recorder.last().Name)

	// No further saves arrive after the coalesced one.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, recorder.count())
}

func TestSaverScheduleResetsWindow(t *testing.T) {
	recorder := &saveRecorder{}
	client := testServer(t, recorder.handler())
	saver := NewSaver(client, 40*time.Millisecond, zap.NewNop())
	defer saver.Stop()

	saver.Schedule(Deck{ID: "d1", Name: "first"})
	time.Sleep(25 * time.Millisecond)
	saver.Schedule(Deck{ID: "d1", Name: "second"})
	time.Sleep(25 * time.Millisecond)

	// The first window was reset before expiring, so nothing saved yet.
	assert.Equal(t, 0, recorder.count())

	assert.Eventually(t, func() bool { return recorder.count() == 1 },
		time.Second, 5*time.Millisecond)
	assert.Equal(t, "second", recorder.last().Name)
}

func TestSaverFlushSavesImmediately(t *testing.T) {
	recorder := &saveRecorder{}
	client := testServer(t, recorder.handler())
	saver := NewSaver(client, time.Hour, zap.NewNop())
	defer saver.Stop()

	saver.Schedule(Deck{ID: "d1", Name: "pending"})
	require.NoError(t, saver.Flush(context.Background()))
	assert.Equal(t, 1, recorder.count())
	assert.Equal(t, "pending", recorder.last().Name)

	// Flush with nothing pending is a no-op.
	require.NoError(t, saver.Flush(context.Background()))
	assert.Equal(t, 1, recorder.count())
}

func TestSaverStopCancelsPending(t *testing.T) {
	recorder := &saveRecorder{}
	client := testServer(t, recorder.handler())
	saver := NewSaver(client, 10*time.Millisecond, zap.NewNop())

	saver.Schedule(Deck{ID: "d1", Name: "doomed"})
	saver.Stop()
	saver.Stop()

	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, 0, recorder.count())

	// Scheduling after Stop is refused.
	saver.Schedule(Deck{ID: "d1", Name: "ignored"})
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, 0, recorder.count())
}
