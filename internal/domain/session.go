package domain

// Session binds an account to one device for a bounded time. The row id is
// the bearer credential handed to the client, so it must stay opaque.
// Liveness is derived from ExpireAt at read time, never stored.
type Session struct {
	ID        SessionID `gorm:"type:text;primaryKey" db:"id"`
	AccountID AccountID `gorm:"type:text;not null;index;uniqueIndex:ux_sessions_account_device" db:"account_id"`
	DeviceID  DeviceID  `gorm:"type:text;not null;uniqueIndex:ux_sessions_account_device" db:"device_id"`
	LoginAt   int64     `gorm:"not null" db:"login_at"`
	ExpireAt  int64     `gorm:"not null" db:"expire_at"`
}

func (Session) TableName() string { return "sessions" }

// Live reports whether the session is still usable at the given ms-epoch
// instant.
func (s *Session) Live(nowMillis int64) bool { return s.ExpireAt > nowMillis }
