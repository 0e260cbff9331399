package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/imeshiperera12/FoodOrdering-sub000/pkg/apperr"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, h http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return newClient("test", srv.URL, time.Second, zerolog.Nop()), srv
}

func TestStatusNormalization(t *testing.T) {
	cases := []struct {
		status int
		kind   apperr.Kind
	}{
		{http.StatusUnauthorized, apperr.Unauthorized},
		{http.StatusForbidden, apperr.Unauthorized},
		{http.StatusNotFound, apperr.NotFound},
		{http.StatusBadRequest, apperr.Validation},
		{http.StatusUnprocessableEntity, apperr.Validation},
		{http.StatusConflict, apperr.Conflict},
		{http.StatusInternalServerError, apperr.Server},
		{http.StatusBadGateway, apperr.Server},
	}
	for _, tc := range cases {
		c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		})
		err := c.do(context.Background(), "GET", "/x", "", nil, nil)
		require.Error(t, err, "status=%d", tc.status)
		require.Equal(t, tc.kind, apperr.KindOf(err), "status=%d", tc.status)
	}
}

func TestNetworkFailureIsNetworkKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := newClient("test", srv.URL, time.Second, zerolog.Nop())
	srv.Close() // ปิดก่อนยิง

	err := c.do(context.Background(), "GET", "/x", "", nil, nil)
	require.True(t, apperr.IsKind(err, apperr.Network))
}

func TestErrorMessageFromBody(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid option values"}`))
	})
	err := c.do(context.Background(), "POST", "/x", "", map[string]int{"a": 1}, nil)
	require.EqualError(t, err, "invalid option values")
}

func TestBearerTokenForwarded(t *testing.T) {
	var got string
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})
	require.NoError(t, c.do(context.Background(), "GET", "/x", "tok123", nil, nil))
	require.Equal(t, "Bearer tok123", got)
}

func TestOrdersClientCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/api/orders", r.URL.Path)
		w.Write([]byte(`{"order":{"_id":"o1","status":"pending"}}`))
	}))
	defer srv.Close()

	oc := NewOrdersClient(srv.URL, time.Second, zerolog.Nop())
	o, err := oc.Create(context.Background(), "tok", &CreateOrderIn{RestaurantID: "r1", CustomerID: "u1"})
	require.NoError(t, err)
	require.Equal(t, "o1", o.ID)
	require.Equal(t, "pending", o.Status)
}

func TestDeliveryTrackNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dc := NewDeliveryClient(srv.URL, time.Second, zerolog.Nop())
	_, err := dc.Track(context.Background(), "tok", "o1")
	// ยังไม่มี rider รับงาน — ฝั่งที่เรียกต้องแยกแยะจาก kind ได้
	require.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestAuthClientFavorites(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"favoriteRestaurants":["r1","r2"]}`))
	}))
	defer srv.Close()

	ac := NewAuthClient(srv.URL, time.Second, zerolog.Nop())
	ids, err := ac.Favorites(context.Background(), "tok")
	require.NoError(t, err)
	require.Equal(t, []string{"r1", "r2"}, ids)
}
