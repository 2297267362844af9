package dto

type DeviceInfo struct {
	Name string `json:"name"`
	OS   string `json:"os,omitempty"`
	Type string `json:"type,omitempty"`
}

type LoginRequest struct {
	Username   string     `json:"username"`
	Password   string     `json:"password"`
	ClientID   string     `json:"id"`
	DeviceKey  string     `json:"uuid"`
	DeviceInfo DeviceInfo `json:"deviceInfo"`
}

type LoginUser struct {
	Name string `json:"name"`
}

type LoginResponse struct {
	Type        string    `json:"type"`
	AccessToken string    `json:"access_token"`
	User        LoginUser `json:"user"`
}
