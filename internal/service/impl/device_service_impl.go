package impl

import (
	"context"
	"time"

	"rdapi/internal/domain"
	"rdapi/internal/dto"
	"rdapi/internal/service"
	"rdapi/internal/store"
)

var _ service.DeviceService = (*DeviceServiceImpl)(nil)

type DeviceServiceImpl struct {
	Store    dataStore
	TokenTTL time.Duration

	now   func() time.Time
	newID func() string
}

func NewDeviceServiceImpl(st *store.Store, tokenTTL time.Duration) *DeviceServiceImpl {
	return &DeviceServiceImpl{
		Store:    gormStoreAdapter{store: st},
		TokenTTL: tokenTTL,
		now:      time.Now,
		newID:    domain.NewID,
	}
}

// Heartbeat refreshes the device's last-seen time and pushes out the expiry
// of the session bound to it. Unknown devices no-op: a heartbeat never
// creates state and never checks the session cap.
func (d *DeviceServiceImpl) Heartbeat(ctx context.Context, deviceKey string) error {
	if deviceKey == "" {
		return nil
	}
	return d.Store.WithTx(ctx, func(tx storeTx) error {
		device, err := tx.Devices().FindByKey(ctx, deviceKey)
		if err != nil {
			if isNotFound(err) {
				return nil
			}
			return err
		}

		now := d.now().UnixMilli()
		device.LastSeenAt = now
		if err := tx.Devices().Save(ctx, device); err != nil {
			return err
		}

		sess, err := tx.Sessions().FindByDeviceID(ctx, device.ID)
		if err != nil {
			if isNotFound(err) {
				return nil
			}
			return err
		}
		return tx.Sessions().UpdateExpiry(ctx, sess.ID, now+d.TokenTTL.Milliseconds())
	})
}

// UpdateSysinfo upserts the device record keyed by its stable identifier and
// overwrites the reported metadata.
func (d *DeviceServiceImpl) UpdateSysinfo(ctx context.Context, r dto.SysinfoRequest) error {
	if r.DeviceKey == "" {
		return ErrEmptyDeviceKey
	}
	return d.Store.WithTx(ctx, func(tx storeTx) error {
		device, err := tx.Devices().FindByKey(ctx, r.DeviceKey)
		if err != nil {
			if !isNotFound(err) {
				return err
			}
			device = &domain.Device{ID: d.newID(), Key: r.DeviceKey}
		}

		device.ClientID = r.ClientID
		device.Hostname = r.Hostname
		device.Username = r.Username
		device.OS = r.OS
		device.CPU = r.CPU
		device.Memory = r.Memory
		device.Version = r.Version
		device.LastSeenAt = d.now().UnixMilli()
		return tx.Devices().Save(ctx, device)
	})
}
