package storage

import "context"

// Storer persists converted records in arrival order.
type Storer[T any] interface {
	Save(ctx context.Context, record T) error
	Close() error
}

type StorerError string

const (
	ErrStorerClosed StorerError = "storer is closed"
)

func (e StorerError) Error() string {
	return string(e)
}
