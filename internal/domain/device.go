package domain

// Device is one physical or virtual endpoint of the fleet. Key is the stable
// identifier the client supplies on every call; it survives reinstalls, the
// row is created on first sighting and never deleted.
type Device struct {
	ID       DeviceID `gorm:"type:text;primaryKey" db:"id" json:"id"`
	Key      string   `gorm:"type:text;not null;uniqueIndex:ux_devices_key" db:"key" json:"key"`
	ClientID string   `gorm:"type:text" db:"client_id" json:"clientId"`
	Hostname string   `gorm:"type:text" db:"hostname" json:"hostname"`
	Username string   `gorm:"type:text" db:"username" json:"username"`
	OS       string   `gorm:"type:text" db:"os" json:"os"`
	CPU      string   `gorm:"type:text" db:"cpu" json:"cpu"`
	Memory   string   `gorm:"type:text" db:"memory" json:"memory"`
	Version  string   `gorm:"type:text" db:"version" json:"version"`
	// LastSeenAt is ms-epoch of the latest login, heartbeat or sysinfo upload.
	LastSeenAt int64 `gorm:"not null" db:"last_seen_at" json:"lastSeenAt"`
}

func (Device) TableName() string { return "devices" }
