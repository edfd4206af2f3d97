package kafka

import (
	"context"
	"math/rand"
	"time"
)

// backoff — экспоненциальная задержка с equal-jitter: половина фиксирована, половина случайна.
// Не потокобезопасен, живёт внутри цикла Run.
type backoff struct {
	initial time.Duration
	max     time.Duration
	cur     time.Duration
	rnd     *rand.Rand
}

func newBackoff(initial, max time.Duration, rnd *rand.Rand) *backoff {
	return &backoff{initial: initial, max: max, cur: initial, rnd: rnd}
}

func (b *backoff) reset() { b.cur = b.initial }

// next — задержка текущей попытки; следующая вдвое больше, но не выше max.
func (b *backoff) next() time.Duration {
	d := b.jitter(b.cur)
	b.cur = min(b.cur*2, b.max)
	return d
}

func (b *backoff) jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	return half + time.Duration(b.rnd.Int63n(int64(d-half)+1))
}

// sleepCtx — false, если контекст отменён раньше.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
