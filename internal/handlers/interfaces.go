package handlers

import (
	"context"

	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/api/community"
	geoapi "github.com/gitswhy/cognition-web-genesis-sub001/pkg/api/geo"
)

type SnapshotBuilder interface {
	Snapshot(ctx context.Context) (*community.Snapshot, error)
}

type LocationResolver interface {
	Resolve(ctx context.Context, ip, locale string) geoapi.LocationInfo
}

type WaitlistStore interface {
	Add(ctx context.Context, email, name, source string) (bool, error)
	Count(ctx context.Context) (int64, error)
}
