package restaurantservice

// Restaurant модель ресторана из каталога RestaurantService
type Restaurant struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Phone    *string `json:"phone,omitempty"`
	Cuisine  *string `json:"cuisine,omitempty"`
	OwnerID  int64   `json:"owner_id"`
	IsActive bool    `json:"is_active"`
}

// ErrorResponse модель ошибки от RestaurantService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
