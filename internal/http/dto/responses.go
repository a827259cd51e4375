package dto

type AuthResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

type MeResponse struct {
	User       any `json:"user"`
	Brand      any `json:"brand,omitempty"`
	Influencer any `json:"influencer,omitempty"`
}

type UnreadCountResponse struct {
	Unread int `json:"unread"`
}

type FavoriteToggleResponse struct {
	Saved bool `json:"saved"`
}
