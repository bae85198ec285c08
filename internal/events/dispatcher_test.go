package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcher(t *testing.T) {
	d := NewInMemoryDispatcher()
	ctx := context.Background()

	var seen []Reason
	unsubscribe := d.Subscribe(EventSessionChanged, func(_ context.Context, e Event) error {
		seen = append(seen, e.Reason)
		return nil
	})
	d.Subscribe(EventSessionChanged, func(context.Context, Event) error {
		return errors.New("role cache offline")
	})

	err := d.Publish(ctx, Event{Type: EventSessionChanged, Reason: ReasonLogin})
	assert.EqualError(t, err, "role cache offline")
	assert.Equal(t, []Reason{ReasonLogin}, seen)

	unsubscribe()
	unsubscribe()
	_ = d.Publish(ctx, Event{Type: EventSessionChanged, Reason: ReasonLogout})
	assert.Equal(t, []Reason{ReasonLogin}, seen)

	assert.NoError(t, d.Publish(ctx, Event{Type: "other"}))
}
