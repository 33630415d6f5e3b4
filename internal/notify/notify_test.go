package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitea.knapp/jacoknapp/launcher/internal/logging"
)

func TestNotifyFansOut(t *testing.T) {
	d := NewDispatcher(logging.Discard())
	a, cancelA := d.Subscribe(4)
	defer cancelA()
	b, cancelB := d.Subscribe(4)
	defer cancelB()

	d.Notify(ReloadIndex)

	assert.Equal(t, Event{Kind: ReloadIndex}, <-a)
	assert.Equal(t, Event{Kind: ReloadIndex}, <-b)
}

func TestNotifyDoesNotBlockOnFullListener(t *testing.T) {
	d := NewDispatcher(logging.Discard())
	ch, cancel := d.Subscribe(1)
	defer cancel()

	d.Notify(ReloadIndex)
	d.Notify(ReloadIndex)

	require.Len(t, ch, 1)
}

func TestShowAlertCarriesMessage(t *testing.T) {
	d := NewDispatcher(logging.Discard())
	ch, cancel := d.Subscribe(1)
	defer cancel()

	d.ShowAlert("Unexpected error - disk full")
	ev := <-ch
	assert.Equal(t, ShowAlert, ev.Kind)
	assert.Equal(t, "Unexpected error - disk full", ev.Message)
}

func TestCancelClosesAndUnsubscribes(t *testing.T) {
	d := NewDispatcher(logging.Discard())
	ch, cancel := d.Subscribe(1)
	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)
	d.Notify(ReloadIndex) // must not panic on a closed channel
}
