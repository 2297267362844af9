package dto

type HeartbeatRequest struct {
	DeviceKey string `json:"uuid"`
	ClientID  string `json:"id,omitempty"`
}

type SysinfoRequest struct {
	DeviceKey string `json:"uuid"`
	ClientID  string `json:"id"`
	Hostname  string `json:"hostname"`
	Username  string `json:"username"`
	OS        string `json:"os"`
	CPU       string `json:"cpu"`
	Memory    string `json:"memory"`
	Version   string `json:"version"`
}
