package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/imeshiperera12/FoodOrdering-sub000/clients"
	"github.com/imeshiperera12/FoodOrdering-sub000/entity"
	"github.com/imeshiperera12/FoodOrdering-sub000/pkg/apperr"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newDriverFixture(t *testing.T, heartbeat time.Duration) (*DriverService, *atomic.Int64, *atomic.Int64) {
	t.Helper()
	var locationHits, deliveryHits atomic.Int64
	var lastReport atomic.Value

	locationSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locationHits.Add(1)
		var in clients.ReportLocationIn
		json.NewDecoder(r.Body).Decode(&in)
		lastReport.Store(in)
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(locationSrv.Close)

	deliverySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deliveryHits.Add(1)
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(deliverySrv.Close)

	log := zerolog.Nop()
	svc := NewDriverService(
		clients.NewLocationClient(locationSrv.URL, time.Second, log),
		clients.NewDeliveryClient(deliverySrv.URL, time.Second, log),
		heartbeat, log,
	)
	return svc, &locationHits, &deliveryHits
}

func TestReportForwardsAndHeartbeatRepushes(t *testing.T) {
	svc, locationHits, _ := newDriverFixture(t, 5*time.Millisecond)
	defer svc.StopShift("drv1")

	require.NoError(t, svc.Report(context.Background(), "tok", "drv1", 13.75, 100.5))
	require.GreaterOrEqual(t, locationHits.Load(), int64(1))

	// ไม่ต้อง Report ซ้ำ heartbeat ก็ re-push ตำแหน่งเดิมให้เอง
	require.Eventually(t, func() bool { return locationHits.Load() >= 4 }, time.Second, time.Millisecond)
}

func TestStopShiftEndsHeartbeat(t *testing.T) {
	svc, locationHits, _ := newDriverFixture(t, 5*time.Millisecond)

	require.NoError(t, svc.Report(context.Background(), "tok", "drv1", 13.75, 100.5))
	require.Eventually(t, func() bool { return locationHits.Load() >= 2 }, time.Second, time.Millisecond)

	svc.StopShift("drv1")
	frozen := locationHits.Load()
	time.Sleep(60 * time.Millisecond)
	require.Equal(t, frozen, locationHits.Load(), "heartbeat kept pushing after shift ended")
}

func TestReportAcceptsZeroCoordinates(t *testing.T) {
	svc, locationHits, _ := newDriverFixture(t, time.Hour)
	defer svc.StopShift("drv1")

	// (0, 0) และพิกัดบนเส้นเมริเดียน เช่น Greenwich เป็นตำแหน่งจริง
	require.NoError(t, svc.Report(context.Background(), "tok", "drv1", 0, 0))
	require.NoError(t, svc.Report(context.Background(), "tok", "drv1", 51.4779, 0))
	// อย่างน้อย 2 จากการ Report ตรง ๆ (heartbeat อาจยิงแทรกอีกครั้ง)
	require.GreaterOrEqual(t, locationHits.Load(), int64(2))
}

func TestReportRejectsBadCoordinates(t *testing.T) {
	svc, locationHits, _ := newDriverFixture(t, time.Hour)

	for _, c := range [][2]float64{{91, 0}, {-91, 0}, {0, 181}, {0, -181}} {
		err := svc.Report(context.Background(), "tok", "drv1", c[0], c[1])
		require.True(t, apperr.IsKind(err, apperr.Validation), "coords=%v", c)
	}
	require.Zero(t, locationHits.Load())
}

func TestUpdateDeliveryStatusLimitedToDriverMoves(t *testing.T) {
	svc, _, deliveryHits := newDriverFixture(t, time.Hour)

	require.NoError(t, svc.UpdateDeliveryStatus(context.Background(), "tok", "d1", entity.StatusPickedUp))
	require.NoError(t, svc.UpdateDeliveryStatus(context.Background(), "tok", "d1", entity.StatusDelivered))
	require.EqualValues(t, 2, deliveryHits.Load())

	// rider แตะสถานะฝั่งครัวไม่ได้
	for _, s := range []entity.OrderStatus{entity.StatusPreparing, entity.StatusConfirmed, entity.StatusCancelled} {
		err := svc.UpdateDeliveryStatus(context.Background(), "tok", "d1", s)
		require.True(t, apperr.IsKind(err, apperr.Validation), "status=%s", s)
	}
	require.EqualValues(t, 2, deliveryHits.Load())
}
