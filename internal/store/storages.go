package store

import "github.com/MKhiriev/go-shop-front/internal/logger"

type Storages struct {
	Blobs BlobRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Blobs: NewBlobRepository(db, log),
	}
}
