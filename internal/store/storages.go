package store

import "github.com/MKhiriev/contact-keeper/internal/logger"

type Storages struct {
	UserRepository    UserRepository
	ContactRepository ContactRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ContactRepository: NewContactRepository(db, logger),
	}
}
