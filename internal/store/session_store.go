package store

import (
	"context"

	"rdapi/internal/domain"

	"gorm.io/gorm"
)

type SessionStore struct{ db *gorm.DB }

func (s *Store) Sessions() *SessionStore { return &SessionStore{db: s.DB} }

func (ss *SessionStore) Get(ctx context.Context, id domain.SessionID) (*domain.Session, error) {
	var sess domain.Session
	if err := ss.db.WithContext(ctx).First(&sess, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &sess, nil
}

func (ss *SessionStore) ListForAccount(ctx context.Context, accountID domain.AccountID) ([]*domain.Session, error) {
	var sessions []*domain.Session
	if err := ss.db.WithContext(ctx).Where("account_id = ?", accountID).Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// FindByDeviceID returns the session bound to the device, if any. The unique
// (account, device) index keeps this at most one row per device in practice.
func (ss *SessionStore) FindByDeviceID(ctx context.Context, deviceID domain.DeviceID) (*domain.Session, error) {
	var sess domain.Session
	if err := ss.db.WithContext(ctx).First(&sess, "device_id = ?", deviceID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &sess, nil
}

func (ss *SessionStore) Insert(ctx context.Context, sess *domain.Session) error {
	return ss.db.WithContext(ctx).Create(sess).Error
}

func (ss *SessionStore) UpdateExpiry(ctx context.Context, id domain.SessionID, expireAt int64) error {
	return ss.db.WithContext(ctx).
		Model(&domain.Session{}).
		Where("id = ?", id).
		Update("expire_at", expireAt).Error
}

func (ss *SessionStore) Delete(ctx context.Context, id domain.SessionID) error {
	return ss.db.WithContext(ctx).Delete(&domain.Session{}, "id = ?", id).Error
}

// DeleteForAccount is the cascade used when an account is disabled or
// removed: an immediate global logout.
func (ss *SessionStore) DeleteForAccount(ctx context.Context, accountID domain.AccountID) (int64, error) {
	tx := ss.db.WithContext(ctx).Delete(&domain.Session{}, "account_id = ?", accountID)
	return tx.RowsAffected, tx.Error
}
