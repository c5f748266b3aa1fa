package models

// User is the persisted session identity. Logout flips IsLoggedIn instead of
// deleting the record, so order history and points survive a later login.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Avatar      string `json:"avatar"`
	IsLoggedIn  bool   `json:"isLoggedIn"`
	OrdersCount int    `json:"ordersCount"`
	Points      int    `json:"points"`
}

// PointsPerOrder is the loyalty reward granted on every completed checkout,
// always together with the order count increment.
const PointsPerOrder = 20

// ProfileUpdate carries a partial profile edit. Nil fields are left as-is.
type ProfileUpdate struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}
