package clients

import (
	"context"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

type RestaurantsClient struct{ c *Client }

func NewRestaurantsClient(baseURL string, timeout time.Duration, log zerolog.Logger) *RestaurantsClient {
	return &RestaurantsClient{c: newClient("restaurant", baseURL, timeout, log)}
}

type RestaurantSummary struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Cuisine  string  `json:"cuisine,omitempty"`
	Address  string  `json:"address,omitempty"`
	Rating   float64 `json:"rating,omitempty"`
	IsOpen   bool    `json:"isOpen"`
	ImageURL string  `json:"imageUrl,omitempty"`
}

type MenuItem struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Available   bool    `json:"available"`
}

type RestaurantDetail struct {
	RestaurantSummary
	Menu []MenuItem `json:"menu"`
}

func (rc *RestaurantsClient) List(ctx context.Context, token string) ([]RestaurantSummary, error) {
	var out []RestaurantSummary
	if err := rc.c.do(ctx, "GET", "/api/restaurants", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (rc *RestaurantsClient) Get(ctx context.Context, token, id string) (*RestaurantDetail, error) {
	var out RestaurantDetail
	if err := rc.c.do(ctx, "GET", "/api/restaurants/"+url.PathEscape(id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
