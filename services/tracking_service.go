package services

import (
	"context"
	"sync"
	"time"

	"github.com/imeshiperera12/FoodOrdering-sub000/clients"
	"github.com/imeshiperera12/FoodOrdering-sub000/entity"
	"github.com/imeshiperera12/FoodOrdering-sub000/pkg/apperr"
	"github.com/imeshiperera12/FoodOrdering-sub000/pkg/poll"

	"github.com/rs/zerolog"
)

// TrackingService ดูแล watcher ราย order: poll สถานะ order กับตำแหน่ง rider
// แล้วกระจาย snapshot ให้ subscriber ทุกคนของ order นั้น
//   - order 404       → จบ watcher แสดงสถานะสุดท้าย
//   - network พัง     → เก็บค่าก่อนหน้าไว้ รอรอบถัดไป
//   - delivery 404    → ยังไม่มี rider รับงาน ถือเป็นเรื่องปกติ poll ต่อ
//   - status ถึง terminal → หยุดทั้งคู่
type TrackingService struct {
	Orders   *clients.OrdersClient
	Delivery *clients.DeliveryClient
	Location *clients.LocationClient

	StatusEvery   time.Duration
	LocationEvery time.Duration
	Log           zerolog.Logger

	mu       sync.Mutex
	watchers map[string]*watcher
}

func NewTrackingService(orders *clients.OrdersClient, delivery *clients.DeliveryClient, location *clients.LocationClient,
	statusEvery, locationEvery time.Duration, log zerolog.Logger) *TrackingService {
	return &TrackingService{
		Orders:        orders,
		Delivery:      delivery,
		Location:      location,
		StatusEvery:   statusEvery,
		LocationEvery: locationEvery,
		Log:           log.With().Str("svc", "tracking").Logger(),
		watchers:      make(map[string]*watcher),
	}
}

type Subscriber func(entity.TrackingSnapshot)

type watcher struct {
	svc     *TrackingService
	orderID string
	token   string

	ctx    context.Context
	cancel context.CancelFunc

	statusLoop   *poll.Runner
	locationLoop *poll.Runner

	mu      sync.Mutex
	snap    entity.TrackingSnapshot
	subs    map[int]Subscriber
	nextSub int
}

// Watch สมัครรับ snapshot ของ order; subscriber คนแรกเป็นคนสตาร์ท watcher
// cancel ที่คืนไปต้องถูกเรียกตอนเลิกดู — คนสุดท้ายออกแล้ว watcher หยุด poll จริง ๆ
func (s *TrackingService) Watch(orderID, token string, sub Subscriber) (entity.TrackingSnapshot, func()) {
	s.mu.Lock()
	w, ok := s.watchers[orderID]
	if !ok {
		w = s.newWatcher(orderID, token)
		s.watchers[orderID] = w
	}
	s.mu.Unlock()

	w.mu.Lock()
	id := w.nextSub
	w.nextSub++
	w.subs[id] = sub
	snap := w.snap
	w.mu.Unlock()

	// สตาร์ท loop หลังลง subscriber แล้ว — tick แรกจะไม่มีใครพลาด
	if !ok {
		w.start()
	}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			w.mu.Lock()
			delete(w.subs, id)
			empty := len(w.subs) == 0
			w.mu.Unlock()
			if empty {
				s.dropWatcher(orderID, w)
			}
		})
	}
	return snap, cancel
}

func (s *TrackingService) newWatcher(orderID, token string) *watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &watcher{
		svc:     s,
		orderID: orderID,
		token:   token,
		ctx:     ctx,
		cancel:  cancel,
		subs:    make(map[int]Subscriber),
		snap:    entity.TrackingSnapshot{OrderID: orderID, Status: entity.StatusPending, UpdatedAt: time.Now()},
	}
	w.statusLoop = poll.Every("order-status", s.StatusEvery, w.statusTick).WithLogger(s.Log)
	w.locationLoop = poll.Every("driver-location", s.LocationEvery, w.locationTick).WithLogger(s.Log)
	return w
}

func (w *watcher) start() {
	w.statusLoop.Start(w.ctx)
	w.locationLoop.Start(w.ctx)
}

func (s *TrackingService) dropWatcher(orderID string, w *watcher) {
	s.mu.Lock()
	if s.watchers[orderID] == w {
		delete(s.watchers, orderID)
	}
	s.mu.Unlock()
	w.cancel()
}

// Shutdown หยุด watcher ทั้งหมด (ใช้ตอนปิด process)
func (s *TrackingService) Shutdown() {
	s.mu.Lock()
	ws := make([]*watcher, 0, len(s.watchers))
	for _, w := range s.watchers {
		ws = append(ws, w)
	}
	s.watchers = make(map[string]*watcher)
	s.mu.Unlock()
	for _, w := range ws {
		w.cancel()
	}
}

func (w *watcher) statusTick(ctx context.Context) error {
	o, err := w.svc.Orders.Get(ctx, w.token, w.orderID)
	if err != nil {
		if apperr.IsKind(err, apperr.NotFound) {
			// order หายไปเลย → จบ แสดงค่าสุดท้ายที่เคยเห็น
			w.update(ctx, func(s *entity.TrackingSnapshot) { s.OrderGone = true })
			w.cancel()
			return poll.ErrStop
		}
		return err
	}

	status := o.DisplayStatus()
	w.update(ctx, func(s *entity.TrackingSnapshot) { s.Status = status })

	if status.Terminal() {
		w.cancel()
		return poll.ErrStop
	}
	return nil
}

func (w *watcher) locationTick(ctx context.Context) error {
	d, err := w.svc.Delivery.Track(ctx, w.token, w.orderID)
	if err != nil {
		if apperr.IsKind(err, apperr.NotFound) {
			return nil // ยังไม่ assign rider
		}
		return err
	}

	var loc *entity.DriverLocation
	if d.DeliveryPersonID != "" {
		loc, err = w.svc.Location.Get(ctx, w.token, d.DeliveryPersonID)
		if err != nil && !apperr.IsKind(err, apperr.NotFound) {
			// ได้ delivery มาแล้วแต่ตำแหน่งพัง → อัปเดตเท่าที่มี
			w.update(ctx, func(s *entity.TrackingSnapshot) { s.Delivery = d })
			return err
		}
	}

	w.update(ctx, func(s *entity.TrackingSnapshot) {
		s.Delivery = d
		if loc != nil {
			s.Location = loc
		}
	})
	return nil
}

// update แก้ snapshot แล้วกระจายให้ subscriber
// เช็ค ctx ก่อนเขียนเสมอ — response ที่มาช้าหลังถูกยกเลิกต้องถูกทิ้ง
func (w *watcher) update(ctx context.Context, mut func(*entity.TrackingSnapshot)) {
	if ctx.Err() != nil {
		return
	}
	w.mu.Lock()
	mut(&w.snap)
	w.snap.UpdatedAt = time.Now()
	snap := w.snap
	subs := make([]Subscriber, 0, len(w.subs))
	for _, s := range w.subs {
		subs = append(subs, s)
	}
	w.mu.Unlock()
	for _, s := range subs {
		s(snap)
	}
}

// Snapshot ดึงสด ๆ ครั้งเดียวสำหรับ GET (ไม่สตาร์ท watcher)
func (s *TrackingService) Snapshot(ctx context.Context, token, orderID string) (*entity.TrackingSnapshot, error) {
	o, err := s.Orders.Get(ctx, token, orderID)
	if err != nil {
		return nil, err
	}
	snap := &entity.TrackingSnapshot{
		OrderID:   orderID,
		Status:    o.DisplayStatus(),
		UpdatedAt: time.Now(),
	}

	d, err := s.Delivery.Track(ctx, token, orderID)
	if err != nil {
		if !apperr.IsKind(err, apperr.NotFound) {
			s.Log.Warn().Err(err).Str("order_id", orderID).Msg("delivery track failed")
		}
		return snap, nil
	}
	snap.Delivery = d

	if d.DeliveryPersonID != "" {
		if loc, err := s.Location.Get(ctx, token, d.DeliveryPersonID); err == nil {
			snap.Location = loc
		}
	}
	return snap, nil
}
