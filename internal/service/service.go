package service

import (
	"context"
	"time"

	"github.com/starevents/starevents-api/internal/domain"
)

// ImageStore keeps event images outside the database.
type ImageStore interface {
	Save(ctx context.Context, data []byte, name string) (string, error)
	Delete(ctx context.Context, path string) error
}

// AvailabilityPublisher receives the inventory and status of an event after every change to it.
type AvailabilityPublisher interface {
	Publish(a domain.Availability)
}

type nopPublisher struct{}

func (nopPublisher) Publish(domain.Availability) {}

func publisherOrNop(p AvailabilityPublisher) AvailabilityPublisher {
	if p == nil {
		return nopPublisher{}
	}
	return p
}

// Image is an uploaded file waiting to be stored.
type Image struct {
	Name string
	Data []byte
}

func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}
