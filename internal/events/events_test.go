package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiDeliversToEveryPublisher(t *testing.T) {
	var got []string
	record := func(name string) Publisher {
		return PublisherFunc(func(_ context.Context, e Event) {
			got = append(got, name+":"+e.Resource)
		})
	}

	m := Multi{record("a"), nil, Nop{}, record("b")}
	m.Publish(context.Background(), Event{Resource: "vendors", Action: ActionCreated, ID: 1})

	assert.Equal(t, []string{"a:vendors", "b:vendors"}, got)
}
