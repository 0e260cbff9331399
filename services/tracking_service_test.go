package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/imeshiperera12/FoodOrdering-sub000/clients"
	"github.com/imeshiperera12/FoodOrdering-sub000/entity"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type trackFixture struct {
	svc       *TrackingService
	status    atomic.Value // string; "gone" = order ตอบ 404
	assigned  atomic.Bool
	orderHits atomic.Int64
}

func newTrackFixture(t *testing.T) *trackFixture {
	t.Helper()
	f := &trackFixture{}
	f.status.Store("pending")

	orderSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.orderHits.Add(1)
		st := f.status.Load().(string)
		if st == "gone" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprintf(w, `{"_id":"o1","customerId":"u1","status":%q}`, st)
	}))
	t.Cleanup(orderSrv.Close)

	deliverySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !f.assigned.Load() {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"_id":"d1","orderId":"o1","deliveryPersonId":"drv1","status":"assigned"}`))
	}))
	t.Cleanup(deliverySrv.Close)

	locationSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/drv1"))
		w.Write([]byte(`{"latitude":13.7563,"longitude":100.5018,"updatedAt":"2026-08-28T10:00:00Z"}`))
	}))
	t.Cleanup(locationSrv.Close)

	log := zerolog.Nop()
	f.svc = NewTrackingService(
		clients.NewOrdersClient(orderSrv.URL, time.Second, log),
		clients.NewDeliveryClient(deliverySrv.URL, time.Second, log),
		clients.NewLocationClient(locationSrv.URL, time.Second, log),
		5*time.Millisecond, 5*time.Millisecond, log,
	)
	return f
}

func collect(f *trackFixture) (<-chan entity.TrackingSnapshot, func()) {
	ch := make(chan entity.TrackingSnapshot, 64)
	_, cancel := f.svc.Watch("o1", "tok", func(s entity.TrackingSnapshot) {
		select {
		case ch <- s:
		default:
		}
	})
	return ch, cancel
}

func waitFor(t *testing.T, ch <-chan entity.TrackingSnapshot, pred func(entity.TrackingSnapshot) bool) entity.TrackingSnapshot {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case s := <-ch:
			if pred(s) {
				return s
			}
		case <-deadline:
			t.Fatal("snapshot condition not reached")
			return entity.TrackingSnapshot{}
		}
	}
}

func TestWatchDeliversStatusAndLocation(t *testing.T) {
	f := newTrackFixture(t)
	f.status.Store("preparing")
	f.assigned.Store(true)

	ch, cancel := collect(f)
	defer cancel()

	snap := waitFor(t, ch, func(s entity.TrackingSnapshot) bool {
		return s.Status == entity.StatusPreparing && s.Location != nil
	})
	require.Equal(t, "d1", snap.Delivery.ID)
	require.InDelta(t, 13.7563, snap.Location.Latitude, 1e-9)
}

func TestUnknownStatusRendersAsPending(t *testing.T) {
	f := newTrackFixture(t)
	f.status.Store("mystery_state")

	ch, cancel := collect(f)
	defer cancel()

	waitFor(t, ch, func(s entity.TrackingSnapshot) bool { return s.Status == entity.StatusPending })
}

func TestDeliveryNotFoundIsTransient(t *testing.T) {
	f := newTrackFixture(t)
	f.status.Store("confirmed")
	// ยังไม่ assign rider: ต้อง poll ต่อเนื่อง ไม่ error ไม่หยุด
	ch, cancel := collect(f)
	defer cancel()

	snap := waitFor(t, ch, func(s entity.TrackingSnapshot) bool { return s.Status == entity.StatusConfirmed })
	require.Nil(t, snap.Delivery)

	f.assigned.Store(true)
	waitFor(t, ch, func(s entity.TrackingSnapshot) bool { return s.Delivery != nil })
}

func TestTerminalStatusStopsPolling(t *testing.T) {
	f := newTrackFixture(t)
	f.status.Store("delivered")

	ch, cancel := collect(f)
	defer cancel()

	waitFor(t, ch, func(s entity.TrackingSnapshot) bool { return s.Status == entity.StatusDelivered })

	time.Sleep(30 * time.Millisecond)
	frozen := f.orderHits.Load()
	time.Sleep(60 * time.Millisecond)
	require.Equal(t, frozen, f.orderHits.Load(), "watcher kept polling after terminal status")
}

func TestOrderGoneStopsPolling(t *testing.T) {
	f := newTrackFixture(t)
	f.status.Store("gone")

	ch, cancel := collect(f)
	defer cancel()

	waitFor(t, ch, func(s entity.TrackingSnapshot) bool { return s.OrderGone })

	time.Sleep(30 * time.Millisecond)
	frozen := f.orderHits.Load()
	time.Sleep(60 * time.Millisecond)
	require.Equal(t, frozen, f.orderHits.Load())
}

func TestCancelStopsPolling(t *testing.T) {
	f := newTrackFixture(t)
	f.status.Store("confirmed")

	ch, cancel := collect(f)
	waitFor(t, ch, func(s entity.TrackingSnapshot) bool { return s.Status == entity.StatusConfirmed })

	cancel()
	time.Sleep(30 * time.Millisecond)
	frozen := f.orderHits.Load()
	time.Sleep(60 * time.Millisecond)
	// ออกจากหน้าจอแล้วต้องไม่มี request หลุดออกไปอีก (timer leak)
	require.Equal(t, frozen, f.orderHits.Load())
}

func TestLastSubscriberOutStopsSharedWatcher(t *testing.T) {
	f := newTrackFixture(t)
	f.status.Store("confirmed")

	_, cancel1 := collect(f)
	ch2, cancel2 := collect(f)
	waitFor(t, ch2, func(s entity.TrackingSnapshot) bool { return s.Status == entity.StatusConfirmed })

	cancel1()
	// ยังมีคนดูอยู่ → poll ต่อ
	h1 := f.orderHits.Load()
	require.Eventually(t, func() bool { return f.orderHits.Load() > h1 }, time.Second, time.Millisecond)

	cancel2()
	time.Sleep(30 * time.Millisecond)
	frozen := f.orderHits.Load()
	time.Sleep(60 * time.Millisecond)
	require.Equal(t, frozen, f.orderHits.Load())
}

func TestSnapshotOnDemand(t *testing.T) {
	f := newTrackFixture(t)
	f.status.Store("picked_up")
	f.assigned.Store(true)

	snap, err := f.svc.Snapshot(context.Background(), "tok", "o1")
	require.NoError(t, err)
	require.Equal(t, entity.StatusPickedUp, snap.Status)
	require.NotNil(t, snap.Delivery)
	require.NotNil(t, snap.Location)

	// on-demand ครั้งเดียวจบ ไม่ทิ้ง watcher ไว้
	before := f.orderHits.Load()
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, before, f.orderHits.Load())
}
