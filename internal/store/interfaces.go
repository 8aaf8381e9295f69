package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SchemaRepository creates the SeaTable databases and loads their schema.
type SchemaRepository interface {
	// EnsureDatabase creates name if it does not exist and reports whether
	// it was created by this call.
	EnsureDatabase(ctx context.Context, name string) (bool, error)
	// ImportSQL runs statements inside database in one transaction.
	ImportSQL(ctx context.Context, database string, statements []string) error
}

// AdminRepository looks up user profiles of the web application.
type AdminRepository interface {
	// CountProfilesByEmail returns the number of profiles with email as
	// their contact address.
	CountProfilesByEmail(ctx context.Context, email string) (int, error)
}
