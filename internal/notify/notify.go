// Package notify fans out UI events to whoever is listening: the embedded
// web UI over /api/events, or tests.
package notify

import (
	"sync"

	"github.com/sirupsen/logrus"
)

type Kind string

const (
	// ReloadIndex tells the home page to reload, e.g. after playback state
	// changed underneath it.
	ReloadIndex Kind = "RELOAD_INDEX"
	// ShowAlert carries a user-visible error message.
	ShowAlert Kind = "SHOW_ALERT"
)

type Event struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message,omitempty"`
}

type Dispatcher struct {
	log  logrus.FieldLogger
	mu   sync.RWMutex
	subs map[int]chan Event
	next int
}

func NewDispatcher(log logrus.FieldLogger) *Dispatcher {
	return &Dispatcher{log: log, subs: map[int]chan Event{}}
}

// Subscribe registers a listener. Events are dropped for a listener whose
// buffer is full. cancel closes the channel.
func (d *Dispatcher) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	d.mu.Lock()
	id := d.next
	d.next++
	d.subs[id] = ch
	d.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			d.mu.Lock()
			delete(d.subs, id)
			d.mu.Unlock()
			close(ch)
		})
	}
}

// Notify emits kind without waiting for anyone.
func (d *Dispatcher) Notify(kind Kind) {
	d.publish(Event{Kind: kind})
}

func (d *Dispatcher) ShowAlert(msg string) {
	d.log.WithField("alert", msg).Error("showing alert")
	d.publish(Event{Kind: ShowAlert, Message: msg})
}

func (d *Dispatcher) publish(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	d.log.WithField("kind", ev.Kind).WithField("listeners", len(d.subs)).Debug("notify")
	for id, ch := range d.subs {
		select {
		case ch <- ev:
		default:
			d.log.WithField("kind", ev.Kind).WithField("listener", id).Warn("listener busy, event dropped")
		}
	}
}
