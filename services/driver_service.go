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

// DriverService ฝั่ง rider: รายงานตำแหน่ง + อัปเดตสถานะการส่ง
// ตำแหน่งล่าสุดถูก re-push ให้ location service ทุก HeartbeatEvery
// ระหว่างที่ rider ยังเปิดกะอยู่ เผื่อแอปเงียบไปแต่ rider ยังวิ่งงาน
type DriverService struct {
	Location *clients.LocationClient
	Delivery *clients.DeliveryClient

	HeartbeatEvery time.Duration
	Log            zerolog.Logger

	mu     sync.Mutex
	shifts map[string]*shift
}

type shift struct {
	driverID string
	token    string
	lat, lng float64
	loop     *poll.Runner
}

func NewDriverService(location *clients.LocationClient, delivery *clients.DeliveryClient,
	heartbeatEvery time.Duration, log zerolog.Logger) *DriverService {
	return &DriverService{
		Location:       location,
		Delivery:       delivery,
		HeartbeatEvery: heartbeatEvery,
		Log:            log.With().Str("svc", "driver").Logger(),
		shifts:         make(map[string]*shift),
	}
}

// Report ส่งตำแหน่งขึ้น location service ทันที แล้วจำไว้ให้ heartbeat ใช้ต่อ
func (s *DriverService) Report(ctx context.Context, token, driverID string, lat, lng float64) error {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return apperr.E(apperr.Validation, "coordinates out of range")
	}

	if err := s.Location.Report(ctx, token, &clients.ReportLocationIn{
		AgentID: driverID, Latitude: lat, Longitude: lng,
	}); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sh, ok := s.shifts[driverID]
	if !ok {
		sh = &shift{driverID: driverID}
		sh.loop = poll.Every("driver-heartbeat", s.HeartbeatEvery, func(ctx context.Context) error {
			return s.heartbeat(ctx, driverID)
		}).WithLogger(s.Log)
		s.shifts[driverID] = sh
		sh.loop.Start(context.Background())
	}
	sh.token, sh.lat, sh.lng = token, lat, lng
	return nil
}

func (s *DriverService) heartbeat(ctx context.Context, driverID string) error {
	s.mu.Lock()
	sh, ok := s.shifts[driverID]
	if !ok {
		s.mu.Unlock()
		return poll.ErrStop
	}
	token, lat, lng := sh.token, sh.lat, sh.lng
	s.mu.Unlock()

	return s.Location.Report(ctx, token, &clients.ReportLocationIn{
		AgentID: driverID, Latitude: lat, Longitude: lng,
	})
}

// StopShift ปิดกะ: เลิก re-push ตำแหน่ง
func (s *DriverService) StopShift(driverID string) {
	s.mu.Lock()
	sh, ok := s.shifts[driverID]
	if ok {
		delete(s.shifts, driverID)
	}
	s.mu.Unlock()
	if ok {
		sh.loop.Stop()
	}
}

// Shutdown ปิดกะทั้งหมด หยุด heartbeat ทุกตัว (ใช้ตอนปิด process)
func (s *DriverService) Shutdown() {
	s.mu.Lock()
	shifts := make([]*shift, 0, len(s.shifts))
	for _, sh := range s.shifts {
		shifts = append(shifts, sh)
	}
	s.shifts = make(map[string]*shift)
	s.mu.Unlock()
	for _, sh := range shifts {
		sh.loop.Stop()
	}
}

// UpdateDeliveryStatus: rider แตะได้แค่ picked_up กับ delivered เท่านั้น
func (s *DriverService) UpdateDeliveryStatus(ctx context.Context, token, deliveryID string, status entity.OrderStatus) error {
	if status != entity.StatusPickedUp && status != entity.StatusDelivered {
		return apperr.Ef(apperr.Validation, "drivers cannot set status %q", status)
	}
	return s.Delivery.UpdateStatus(ctx, token, deliveryID, status)
}
