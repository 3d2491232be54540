package users

import "context"

// Record is one stored account. Salt and PasswordHash are hex strings that
// are always produced together.
type Record struct {
	Username     string
	Email        string
	Salt         string
	PasswordHash string
	CreatedAt    string
}

type Repository interface {
	EnsureExists(ctx context.Context) error
	LoadAll(ctx context.Context) ([]Record, error)
	SaveAll(ctx context.Context, records []Record) error
}

// Find returns the index and a pointer into records for the first exact
// username match, or (-1, nil).
func Find(records []Record, username string) (int, *Record) {
	for i := range records {
		if records[i].Username == username {
			return i, &records[i]
		}
	}
	return -1, nil
}
