package clients

import (
	"context"
	"net/url"
	"time"

	"github.com/imeshiperera12/FoodOrdering-sub000/entity"

	"github.com/rs/zerolog"
)

type LocationClient struct{ c *Client }

func NewLocationClient(baseURL string, timeout time.Duration, log zerolog.Logger) *LocationClient {
	return &LocationClient{c: newClient("location", baseURL, timeout, log)}
}

func (lc *LocationClient) Get(ctx context.Context, token, driverID string) (*entity.DriverLocation, error) {
	var out entity.DriverLocation
	if err := lc.c.do(ctx, "GET", "/api/location/"+url.PathEscape(driverID), token, nil, &out); err != nil {
		return nil, err
	}
	if out.DriverID == "" {
		out.DriverID = driverID
	}
	return &out, nil
}

type ReportLocationIn struct {
	AgentID   string  `json:"agentId"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (lc *LocationClient) Report(ctx context.Context, token string, in *ReportLocationIn) error {
	return lc.c.do(ctx, "POST", "/api/location", token, in, nil)
}
