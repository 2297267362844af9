package domain

// TagSet holds an account's address-book tags: a comma-joined name list plus
// a JSON object mapping tag name to color. One row per account.
type TagSet struct {
	ID        string    `gorm:"type:text;primaryKey" db:"id"`
	AccountID AccountID `gorm:"type:text;not null;uniqueIndex:ux_tag_sets_account" db:"account_id"`
	Tags      string    `gorm:"type:text;not null" db:"tags"`
	TagColors string    `gorm:"type:text;not null" db:"tag_colors"`
	CreatedAt int64     `gorm:"not null" db:"created_at"`
}

func (TagSet) TableName() string { return "tag_sets" }

// AddressBookPeer is one saved contact in an account's address book.
type AddressBookPeer struct {
	ID        string    `gorm:"type:text;primaryKey" db:"id"`
	AccountID AccountID `gorm:"type:text;not null;index;uniqueIndex:ux_ab_peers_account_peer" db:"account_id"`
	Peer      string    `gorm:"type:text;not null;uniqueIndex:ux_ab_peers_account_peer" db:"peer"`
	Username  string    `gorm:"type:text" db:"username"`
	Hostname  string    `gorm:"type:text" db:"hostname"`
	Platform  string    `gorm:"type:text" db:"platform"`
	Tags      string    `gorm:"type:text" db:"tags"`
	Hash      string    `gorm:"type:text" db:"hash"`
	Alias     string    `gorm:"type:text" db:"alias"`
	CreatedAt int64     `gorm:"not null" db:"created_at"`
}

func (AddressBookPeer) TableName() string { return "address_book_peers" }
