package restaurantservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с каталогом ресторанов RestaurantService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента RestaurantService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetRestaurant получает ресторан по ID
func (c *Client) GetRestaurant(ctx context.Context, restaurantID int64) (*Restaurant, error) {
	url := fmt.Sprintf("%s/internal/restaurants/%d", c.baseURL, restaurantID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid restaurant ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrRestaurantNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var restaurant Restaurant
	if err := json.NewDecoder(resp.Body).Decode(&restaurant); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &restaurant, nil
}

// GetActiveRestaurant получает ресторан и проверяет, что он активен
// Бронирования принимаются только для активных ресторанов
func (c *Client) GetActiveRestaurant(ctx context.Context, restaurantID int64) (*Restaurant, error) {
	restaurant, err := c.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	if !restaurant.IsActive {
		c.log.Warn("Restaurant id=%d is inactive", restaurantID)
		return nil, ErrRestaurantInactive
	}

	return restaurant, nil
}
