package store

import (
	"context"

	"rdapi/internal/domain"

	"gorm.io/gorm"
)

type DeviceStore struct{ db *gorm.DB }

func (s *Store) Devices() *DeviceStore { return &DeviceStore{db: s.DB} }

func (ds *DeviceStore) FindByKey(ctx context.Context, key string) (*domain.Device, error) {
	var d domain.Device
	if err := ds.db.WithContext(ctx).First(&d, "key = ?", key).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &d, nil
}

// Save persists a device created on first sighting or mutated by a login,
// heartbeat or sysinfo upload.
func (ds *DeviceStore) Save(ctx context.Context, d *domain.Device) error {
	if d.ID == "" {
		d.ID = domain.NewID()
	}
	return ds.db.WithContext(ctx).Save(d).Error
}
