package clients

import (
	"context"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

type AuthClient struct{ c *Client }

func NewAuthClient(baseURL string, timeout time.Duration, log zerolog.Logger) *AuthClient {
	return &AuthClient{c: newClient("auth", baseURL, timeout, log)}
}

type favoritesOut struct {
	FavoriteRestaurants []string `json:"favoriteRestaurants"`
}

func (ac *AuthClient) Favorites(ctx context.Context, token string) ([]string, error) {
	var out favoritesOut
	if err := ac.c.do(ctx, "GET", "/api/auth/favorites", token, nil, &out); err != nil {
		return nil, err
	}
	return out.FavoriteRestaurants, nil
}

func (ac *AuthClient) AddFavorite(ctx context.Context, token, restaurantID string) ([]string, error) {
	var out favoritesOut
	if err := ac.c.do(ctx, "POST", "/api/auth/favorites/"+url.PathEscape(restaurantID), token, nil, &out); err != nil {
		return nil, err
	}
	return out.FavoriteRestaurants, nil
}

func (ac *AuthClient) RemoveFavorite(ctx context.Context, token, restaurantID string) ([]string, error) {
	var out favoritesOut
	if err := ac.c.do(ctx, "DELETE", "/api/auth/favorites/"+url.PathEscape(restaurantID), token, nil, &out); err != nil {
		return nil, err
	}
	return out.FavoriteRestaurants, nil
}

type UserSummary struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (ac *AuthClient) ListUsers(ctx context.Context, token string) ([]UserSummary, error) {
	var out []UserSummary
	if err := ac.c.do(ctx, "GET", "/api/auth/users", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
