package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

const (
	// DatabaseCcnet, DatabaseSeafile and DatabaseDtable are the schemas of
	// a SeaTable deployment.
	DatabaseCcnet   = "ccnet_db"
	DatabaseSeafile = "seafile_db"
	DatabaseDtable  = "dtable_db"

	profileTable = DatabaseDtable + ".profile_profile"

	createDatabase = "CREATE DATABASE IF NOT EXISTS %s CHARACTER SET UTF8"
	useDatabase    = "USE %s"
)

// SplitStatements splits the content of a schema file on ";" and drops the
// statements that are blank after trimming. Schema files contain no
// procedures or string literals with semicolons.
func SplitStatements(content string) []string {
	parts := strings.Split(content, ";")
	statements := make([]string, 0, len(parts))
	for _, part := range parts {
		if stmt := strings.TrimSpace(part); stmt != "" {
			statements = append(statements, stmt)
		}
	}

	return statements
}

// quoteIdentifier backtick-quotes a database name.
func quoteIdentifier(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, "`\x00") {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
	}

	return "`" + name + "`", nil
}

func buildCreateDatabaseQuery(name string) (string, error) {
	ident, err := quoteIdentifier(name)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(createDatabase, ident), nil
}

func buildUseDatabaseQuery(name string) (string, error) {
	ident, err := quoteIdentifier(name)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(useDatabase, ident), nil
}

func buildCountProfilesQuery(email string) (string, []any, error) {
	query, args, err := sq.
		Select("COUNT(*)").
		From(profileTable).
		Where(sq.Eq{"contact_email": email}).
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
