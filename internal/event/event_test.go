package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var got []string

	d.Subscribe(WaveStarted, ListenerFunc(func(Event) { got = append(got, "first") }))
	d.Subscribe(WaveStarted, ListenerFunc(func(Event) { got = append(got, "second") }))
	d.Subscribe(WaveCleared, ListenerFunc(func(Event) { got = append(got, "other") }))

	d.Dispatch(Event{Type: WaveStarted, Data: WaveData{Number: 1}})

	assert.Equal(t, []string{"first", "second"}, got)
}

func TestSubscribeAll(t *testing.T) {
	d := NewDispatcher()
	var seen []EventType
	d.SubscribeAll(ListenerFunc(func(e Event) { seen = append(seen, e.Type) }), EnemyKilled, EnemyBreached)

	d.Dispatch(Event{Type: EnemyBreached})
	d.Dispatch(Event{Type: GameOver})
	d.Dispatch(Event{Type: EnemyKilled})

	assert.Equal(t, []EventType{EnemyBreached, EnemyKilled}, seen)
}
