package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/imeshiperera12/FoodOrdering-sub000/clients"
	"github.com/imeshiperera12/FoodOrdering-sub000/pkg/apperr"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	svc        *OrderService
	status     atomic.Value // string
	customerID string
	writeHits  atomic.Int64 // PUT status + POST rate
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	f := &orderFixture{customerID: "u1"}
	f.status.Store("pending")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			f.writeHits.Add(1)
			w.Write([]byte(`{}`))
			return
		}
		fmt.Fprintf(w, `{"_id":"o1","customerId":%q,"restaurantId":"r1","status":%q}`,
			f.customerID, f.status.Load().(string))
	}))
	t.Cleanup(srv.Close)

	f.svc = NewOrderService(clients.NewOrdersClient(srv.URL, time.Second, zerolog.Nop()))
	return f
}

func TestRateValidation(t *testing.T) {
	f := newOrderFixture(t)
	f.status.Store("delivered")

	for _, r := range []int{0, -1, 6, 100} {
		err := f.svc.Rate(context.Background(), "tok", "u1", "o1", r, "")
		require.True(t, apperr.IsKind(err, apperr.Validation), "rating=%d", r)
	}
	require.Zero(t, f.writeHits.Load())

	require.NoError(t, f.svc.Rate(context.Background(), "tok", "u1", "o1", 5, "great pad thai"))
	require.EqualValues(t, 1, f.writeHits.Load())
}

func TestRateRequiresDeliveredOrder(t *testing.T) {
	f := newOrderFixture(t)
	f.status.Store("preparing")

	err := f.svc.Rate(context.Background(), "tok", "u1", "o1", 4, "")
	require.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestRateRejectsOtherCustomersOrder(t *testing.T) {
	f := newOrderFixture(t)
	f.status.Store("delivered")

	err := f.svc.Rate(context.Background(), "tok", "someone-else", "o1", 4, "")
	require.True(t, apperr.IsKind(err, apperr.Unauthorized))
	require.Zero(t, f.writeHits.Load())
}

func TestOwnerTransitionGuards(t *testing.T) {
	f := newOrderFixture(t)

	// pending → confirmed ผ่าน
	require.NoError(t, f.svc.OwnerConfirm(context.Background(), "tok", "r1", "o1"))
	require.EqualValues(t, 1, f.writeHits.Load())

	// pending → preparing ข้ามขั้น ต้องโดนกันก่อนถึง upstream
	err := f.svc.OwnerStartPreparing(context.Background(), "tok", "r1", "o1")
	require.True(t, apperr.IsKind(err, apperr.Conflict))
	require.EqualValues(t, 1, f.writeHits.Load())

	// ร้านอื่นมายุ่งไม่ได้
	err = f.svc.OwnerConfirm(context.Background(), "tok", "r2", "o1")
	require.True(t, apperr.IsKind(err, apperr.Unauthorized))

	// cancel ได้จากสถานะไหนก็ตามที่ยังไม่จบ
	f.status.Store("preparing")
	require.NoError(t, f.svc.OwnerCancel(context.Background(), "tok", "r1", "o1"))

	// terminal แล้วหยุด
	f.status.Store("delivered")
	err = f.svc.OwnerCancel(context.Background(), "tok", "r1", "o1")
	require.True(t, apperr.IsKind(err, apperr.Conflict))
}
