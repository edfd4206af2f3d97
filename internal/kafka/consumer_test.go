package kafka

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/pokedex/internal/kafka/mocks"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

var testReaderConfig = kafka.ReaderConfig{Topic: "pokedex.favorites", GroupID: "pokedex", Brokers: []string{"b:9092"}}

func newTestConsumer(r reader, h messageHandler) *Consumer {
	return newConsumer(r, h, nopLogger{}, ConsumerConfig{
		ProcessTimeout: 30 * time.Millisecond,
		RetryInitial:   5 * time.Millisecond,
		RetryMax:       10 * time.Millisecond,
	}, rand.New(rand.NewSource(1)))
}

// blockUntilCancel — второй FetchMessage ждёт отмены контекста.
func blockUntilCancel(r *mocks.Mockreader) {
	r.EXPECT().FetchMessage(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (kafka.Message, error) {
			<-ctx.Done()
			return kafka.Message{}, ctx.Err()
		})
}

func runOnce(t *testing.T, c *Consumer) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- c.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("want context.Canceled, got %v", err)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timeout waiting for Run to stop")
	}
}

// Коммит после успешной команды и после мусора; без коммита после временной ошибки.
func TestRun_CommitPolicy(t *testing.T) {
	tests := []struct {
		name       string
		handlerErr error
		wantCommit bool
	}{
		{"applied", nil, true},
		{"invalid command skipped", fmt.Errorf("%w: unknown action", ErrInvalidCommand), true},
		{"timeout left uncommitted", context.DeadlineExceeded, false},
		{"unavailable left uncommitted", errors.New("kv down"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			r := mocks.NewMockreader(ctrl)
			h := mocks.NewMockmessageHandler(ctrl)

			payload := []byte(`{"action":"toggle","name":"pikachu"}`)
			r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
			r.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{Offset: 1, Value: payload}, nil)
			h.EXPECT().HandleMessage(gomock.Any(), payload).Return(tt.handlerErr)
			if tt.wantCommit {
				r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil)
			}
			blockUntilCancel(r)

			runOnce(t, newTestConsumer(r, h))
		})
	}
}

// Ошибка коммита только логируется, цикл продолжается.
func TestRun_CommitFailureKeepsRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	h := mocks.NewMockmessageHandler(ctrl)

	r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	r.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{Offset: 3, Value: []byte("x")}, nil)
	h.EXPECT().HandleMessage(gomock.Any(), []byte("x")).Return(nil)
	r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(errors.New("rebalance in progress"))
	blockUntilCancel(r)

	runOnce(t, newTestConsumer(r, h))
}

// Обработчик получает контекст с дедлайном processTimeout.
func TestRun_HandlerGetsDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	h := mocks.NewMockmessageHandler(ctrl)

	r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	r.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{Value: []byte("x")}, nil)
	h.EXPECT().HandleMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ []byte) error {
			if _, ok := ctx.Deadline(); !ok {
				t.Errorf("handler context has no deadline")
			}
			return nil
		})
	r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil)
	blockUntilCancel(r)

	runOnce(t, newTestConsumer(r, h))
}

// Ошибки брокера повторяются до истечения контекста.
func TestRun_FetchErrorsRetriedUntilDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	h := mocks.NewMockmessageHandler(ctrl)

	r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	r.EXPECT().FetchMessage(gomock.Any()).
		Return(kafka.Message{}, errors.New("broker not available")).
		MinTimes(2)

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()

	if err := newTestConsumer(r, h).Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want DeadlineExceeded, got %v", err)
	}
}

func TestClose_Once(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)

	r.EXPECT().Close().Return(nil).Times(1)

	c := newTestConsumer(r, mocks.NewMockmessageHandler(ctrl))
	if err := c.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestBackoff_DoublesUpToMax(t *testing.T) {
	b := newBackoff(10*time.Millisecond, 35*time.Millisecond, rand.New(rand.NewSource(7)))

	bounds := []time.Duration{10, 20, 35, 35}
	for i, upper := range bounds {
		upper *= time.Millisecond
		got := b.next()
		if got < upper/2 || got > upper {
			t.Fatalf("attempt %d: got %s, want within [%s, %s]", i, got, upper/2, upper)
		}
	}

	b.reset()
	if got := b.next(); got > 10*time.Millisecond {
		t.Fatalf("after reset: got %s, want <= 10ms", got)
	}
}

func TestBackoff_JitterZero(t *testing.T) {
	b := newBackoff(time.Second, time.Second, rand.New(rand.NewSource(1)))
	if got := b.jitter(0); got != 0 {
		t.Fatalf("jitter(0) = %s", got)
	}
}

func TestSleepCtx_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if sleepCtx(ctx, time.Second) {
		t.Fatal("sleepCtx must report cancellation")
	}
}
