package poll

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ErrStop ให้ tick function คืนมาเมื่อถึงสถานะสุดท้ายแล้ว loop จะหยุดเอง
var ErrStop = errors.New("poll: stop")

// Runner ยิง fn ซ้ำตาม interval จนกว่า ctx ถูกยกเลิก, Stop ถูกเรียก
// หรือ fn คืน ErrStop; error อื่นถือเป็น transient แค่ log แล้วรอรอบถัดไป
type Runner struct {
	interval time.Duration
	fn       func(context.Context) error
	log      zerolog.Logger
	name     string

	mu       sync.Mutex
	started  bool
	stopped  bool
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

func Every(name string, interval time.Duration, fn func(context.Context) error) *Runner {
	return &Runner{
		name:     name,
		interval: interval,
		fn:       fn,
		log:      zerolog.Nop(),
		done:     make(chan struct{}),
	}
}

func (r *Runner) WithLogger(l zerolog.Logger) *Runner {
	r.log = l
	return r
}

// Start รัน loop ใน goroutine; tick แรกยิงทันที ไม่ต้องรอ interval
// เรียกซ้ำหรือเรียกหลัง Stop ไปแล้วเป็น no-op
func (r *Runner) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started || r.stopped {
		return
	}
	r.started = true
	ctx, r.cancel = context.WithCancel(ctx)
	go r.run(ctx)
}

func (r *Runner) run(ctx context.Context) {
	defer close(r.done)
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		if ctx.Err() != nil {
			return
		}
		if err := r.fn(ctx); err != nil {
			if errors.Is(err, ErrStop) {
				return
			}
			if ctx.Err() != nil {
				return
			}
			r.log.Warn().Str("poll", r.name).Err(err).Msg("tick failed, keeping previous value")
		}
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}

// Stop ยกเลิกแล้วรอให้ loop จบจริง ๆ — หลัง Stop คืนค่าแล้วจะไม่มี tick อีก
// เรียกซ้ำได้ และเรียกก่อน Start ไม่ panic
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		r.mu.Lock()
		r.stopped = true
		started := r.started
		r.mu.Unlock()
		if !started {
			close(r.done)
			return
		}
		r.cancel()
	})
	<-r.done
}

// Done ปิดเมื่อ loop จบ (ใช้รอจากข้างนอกได้)
func (r *Runner) Done() <-chan struct{} { return r.done }
