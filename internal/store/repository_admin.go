package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/seatable-init/internal/logger"
)

// adminRepository is the MySQL-backed implementation of [AdminRepository].
// It only reads from the profile table of the web application.
type adminRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAdminRepository constructs an [AdminRepository] backed by db.
func NewAdminRepository(db *DB, logger *logger.Logger) AdminRepository {
	logger.Debug().Msg("creating admin repository")
	return &adminRepository{
		db:     db,
		logger: logger,
	}
}

// CountProfilesByEmail counts the rows of dtable_db.profile_profile whose
// contact_email equals email.
func (r *adminRepository) CountProfilesByEmail(ctx context.Context, email string) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountProfilesQuery(email)
	if err != nil {
		return 0, err
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*adminRepository.CountProfilesByEmail").Msg("error querying profiles")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
