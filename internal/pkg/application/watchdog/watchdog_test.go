package watchdog

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

type fakeIngest struct {
	mu   sync.Mutex
	last time.Time
}

func (f *fakeIngest) LastReceived() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

func (f *fakeIngest) set(t time.Time) {
	f.mu.Lock()
	f.last = t
	f.mu.Unlock()
}

func TestSignalsWhenStreamIsSilent(t *testing.T) {
	is := is.New(t)

	published := make(chan string, 8)
	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			select {
			case published <- message.TopicName():
			default:
			}
			return nil
		},
	}

	ingest := &fakeIngest{}
	ingest.set(time.Now().UTC().Add(-time.Minute))

	w := New(ingest, m, &Config{Interval: 10 * time.Millisecond})
	w.Start(context.Background())
	defer w.Stop(context.Background())

	select {
	case topic := <-published:
		is.Equal(topic, "watchdog.cribSilent")
	case <-time.After(time.Second):
		t.Fatal("expected a cribSilent signal")
	}
}

func TestStaysQuietWhileDataFlows(t *testing.T) {
	is := is.New(t)

	var mu sync.Mutex
	count := 0
	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			mu.Lock()
			count++
			mu.Unlock()
			return nil
		},
	}

	ingest := &fakeIngest{}
	ingest.set(time.Now().UTC())

	w := New(ingest, m, &Config{Interval: 50 * time.Millisecond})
	w.Start(context.Background())

	for i := 0; i < 4; i++ {
		time.Sleep(20 * time.Millisecond)
		ingest.set(time.Now().UTC())
	}

	w.Stop(context.Background())

	mu.Lock()
	defer mu.Unlock()
	is.Equal(count, 0)
}

func TestStopReturnsAfterContextCancel(t *testing.T) {
	w := New(&fakeIngest{}, &messaging.MsgContextMock{}, &Config{Interval: 10 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	cancel()
	time.Sleep(30 * time.Millisecond)

	stopped := make(chan struct{})
	go func() {
		w.Stop(context.Background())
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("stop blocked after the worker had already exited")
	}
}

func TestDefaultsToFifteenSecondInterval(t *testing.T) {
	is := is.New(t)

	w := New(&fakeIngest{}, &messaging.MsgContextMock{}, nil)

	impl, ok := w.(*watchdogImpl)
	is.True(ok)
	is.Equal(impl.interval, DefaultInterval)
}
