package adapter

import (
	"context"

	"github.com/MKhiriev/go-eagle/internal/utils"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestID returns the id stored in ctx, or a fresh time-ordered UUIDv7.
// A random UUIDv4 is used if the v7 clock source fails.
func requestID(ctx context.Context) string {
	if id, ok := utils.GetRequestIDFromContext(ctx); ok {
		return id
	}
	if v7, err := uuid.NewV7(); err == nil {
		return v7.String()
	}
	return uuid.NewString()
}
