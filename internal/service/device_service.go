package service

import (
	"context"

	"rdapi/internal/dto"
)

type DeviceService interface {
	// Heartbeat marks the device as seen and extends its bound session, the
	// only path that ever does. Unknown devices are a silent no-op.
	Heartbeat(ctx context.Context, deviceKey string) error
	UpdateSysinfo(ctx context.Context, r dto.SysinfoRequest) error
}
