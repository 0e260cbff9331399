package clients

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/imeshiperera12/FoodOrdering-sub000/entity"

	"github.com/rs/zerolog"
)

type DeliveryClient struct{ c *Client }

func NewDeliveryClient(baseURL string, timeout time.Duration, log zerolog.Logger) *DeliveryClient {
	return &DeliveryClient{c: newClient("delivery", baseURL, timeout, log)}
}

// Track: ถ้ายังไม่มี rider รับงาน delivery service จะตอบ 404
// ฝั่งเราถือเป็นสถานะปกติ ไม่ใช่ error banner
func (dc *DeliveryClient) Track(ctx context.Context, token, orderID string) (*entity.DeliveryInfo, error) {
	var out entity.DeliveryInfo
	if err := dc.c.do(ctx, "GET", "/api/delivery/track/"+url.PathEscape(orderID), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (dc *DeliveryClient) UpdateStatus(ctx context.Context, token, deliveryID string, status entity.OrderStatus) error {
	body := map[string]string{"status": string(status)}
	return dc.c.do(ctx, "PUT", fmt.Sprintf("/api/delivery/%s/status", url.PathEscape(deliveryID)), token, body, nil)
}
