package storage

import (
	"context"

	"github.com/bnema/chaos-recipe-filter/internal/models"
)

// Storage reads and replaces the user's loot filter document.
// Write always replaces the whole document.
type Storage interface {
	// Read returns the document. ok is false when no document exists,
	// in which case the caller skips the update.
	Read(ctx context.Context) (doc string, ok bool, err error)
	Write(ctx context.Context, doc string) error
}

// New creates the storage backend selected by cfg.Type
func New(cfg models.StorageConfig) (Storage, error) {
	switch cfg.Type {
	case models.StorageLocal:
		if cfg.Path == "" {
			return nil, models.NewConfigurationError("storage.path", "local storage needs a filter path")
		}
		return NewLocal(cfg.Path), nil
	case models.StorageRemote:
		if cfg.URL == "" {
			return nil, models.NewConfigurationError("storage.url", "remote storage needs a url")
		}
		return NewRemote(cfg), nil
	default:
		return nil, models.NewConfigurationError("storage.type", "unsupported storage type: "+cfg.Type)
	}
}
