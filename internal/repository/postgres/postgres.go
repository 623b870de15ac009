package postgres

import (
	"database/sql"

	"onerental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.EquipmentRepository
	repository.BookingRepository
	repository.DismissalRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		UserRepository:      NewUserRepository(db),
		EquipmentRepository: NewEquipmentRepository(db),
		BookingRepository:   NewBookingRepository(db),
		DismissalRepository: NewDismissalRepository(db),
	}
}
