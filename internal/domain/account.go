package domain

const (
	AccountEnabled  = 1
	AccountDisabled = 0
)

type Account struct {
	ID        AccountID `gorm:"type:text;primaryKey" db:"id" json:"id"`
	Name      string    `gorm:"type:text;not null;uniqueIndex:ux_accounts_name" db:"name" json:"name"`
	Password  string    `gorm:"type:text;not null" db:"password" json:"-"`
	Nickname  string    `gorm:"type:text" db:"nickname" json:"nickname"`
	Status    int       `gorm:"not null;default:1" db:"status" json:"status"`
	CreatedAt int64     `gorm:"not null" db:"created_at" json:"createdAt"`
}

func (Account) TableName() string { return "accounts" }

func (a *Account) Enabled() bool { return a.Status != AccountDisabled }
