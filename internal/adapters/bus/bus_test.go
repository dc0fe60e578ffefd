package bus

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reportmap/internal/ports"
)

func TestBus_DeliversByName(t *testing.T) {
	b := New(nil)
	tour := b.Subscribe(ports.SignalMenuTour)
	clear := b.Subscribe(ports.SignalMenuTourClear)
	all := b.Subscribe()

	b.Publish(ports.Signal{Name: ports.SignalMenuTour, Step: 0})

	require.Len(t, tour.Signals(), 1)
	assert.Equal(t, ports.Signal{Name: ports.SignalMenuTour}, <-tour.Signals())
	assert.Empty(t, clear.Signals())
	assert.Len(t, all.Signals(), 1)
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	b := New(nil)

	assert.NotPanics(t, func() {
		b.Publish(ports.Signal{Name: ports.SignalMenuTourEnter})
	})
}

func TestBus_FullQueueDrops(t *testing.T) {
	b := New(nil)
	s := b.Subscribe(ports.SignalMenuTour)

	for i := 0; i < DefaultBuffer+5; i++ {
		b.Publish(ports.Signal{Name: ports.SignalMenuTour, Step: i})
	}

	assert.Len(t, s.Signals(), DefaultBuffer)
	assert.Equal(t, 0, (<-s.Signals()).Step)
}

func TestBus_Cancel(t *testing.T) {
	b := New(nil)
	s := b.Subscribe(ports.SignalMenuTour)
	_, err := uuid.Parse(s.ID())
	require.NoError(t, err)

	s.Cancel()
	s.Cancel()

	_, open := <-s.Signals()
	assert.False(t, open)
	assert.Equal(t, 0, b.Subscribers())

	b.Publish(ports.Signal{Name: ports.SignalMenuTour})
}

func TestBus_ConcurrentPublish(t *testing.T) {
	b := New(nil)
	s := b.Subscribe()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Publish(ports.Signal{Name: ports.SignalMenuTourClear})
		}()
	}
	wg.Wait()

	assert.Len(t, s.Signals(), 4)
}
