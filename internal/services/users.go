package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/mailadmin/internal/common"
	"github.com/dmitrijs2005/mailadmin/internal/cryptox"
	"github.com/dmitrijs2005/mailadmin/internal/filex"
	"github.com/dmitrijs2005/mailadmin/internal/logging"
	"github.com/dmitrijs2005/mailadmin/internal/repositories/users"
	"github.com/dmitrijs2005/mailadmin/internal/validate"
)

// ExportHeader is the column set of an export file. Secrets are left out.
var ExportHeader = []string{"username", "email", "created_at"}

// UserService defines record store operations for the shell.
//
// Records are reloaded on every call; nothing is cached between commands.
type UserService interface {
	Init(ctx context.Context) error
	List(ctx context.Context) ([]users.Record, error)
	Add(ctx context.Context, username, email string, password []byte) (users.Record, error)
	Remove(ctx context.Context, username string) error
	Export(ctx context.Context, path string) (int, error)
}

type userService struct {
	repo      users.Repository
	validator *validate.Validator
	hasher    cryptox.Hasher
	logger    logging.Logger
	now       func() time.Time
}

// NewUserService binds the service to a repository and address validator.
func NewUserService(repo users.Repository, v *validate.Validator, logger logging.Logger) UserService {
	return &userService{
		repo:      repo,
		validator: v,
		hasher:    cryptox.DefaultHasher,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *userService) Init(ctx context.Context) error {
	return s.repo.EnsureExists(ctx)
}

func (s *userService) List(ctx context.Context) ([]users.Record, error) {
	return s.repo.LoadAll(ctx)
}

// Add validates the input, hashes the password with a fresh salt and
// rewrites the store with the new record appended.
func (s *userService) Add(ctx context.Context, username, email string, password []byte) (users.Record, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" {
		return users.Record{}, fmt.Errorf("empty username: %w", common.ErrMalformedInput)
	}

	records, err := s.repo.LoadAll(ctx)
	if err != nil {
		return users.Record{}, err
	}
	if i, _ := users.Find(records, username); i >= 0 {
		return users.Record{}, fmt.Errorf("user %q: %w", username, common.ErrAlreadyExists)
	}
	if !s.validator.IsValidAddress(email) {
		return users.Record{}, fmt.Errorf("%q is not a valid @%s address: %w",
			email, s.validator.Domain(), common.ErrInvalidRecipient)
	}

	salt, err := cryptox.GenerateSalt()
	if err != nil {
		return users.Record{}, err
	}
	hash, err := s.hasher.Hash(password, salt)
	if err != nil {
		return users.Record{}, err
	}

	rec := users.Record{
		Username:     username,
		Email:        email,
		Salt:         salt,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC().Format(common.TimestampLayout),
	}
	if err := s.repo.SaveAll(ctx, append(records, rec)); err != nil {
		return users.Record{}, err
	}
	s.logger.Info(ctx, "user added", "username", username)
	return rec, nil
}

// Remove drops the first record with the given username. A miss returns
// common.ErrNotFound without touching the file.
func (s *userService) Remove(ctx context.Context, username string) error {
	records, err := s.repo.LoadAll(ctx)
	if err != nil {
		return err
	}
	i, _ := users.Find(records, strings.TrimSpace(username))
	if i < 0 {
		return fmt.Errorf("user %q: %w", username, common.ErrNotFound)
	}

	kept := make([]users.Record, 0, len(records)-1)
	kept = append(kept, records[:i]...)
	kept = append(kept, records[i+1:]...)
	if err := s.repo.SaveAll(ctx, kept); err != nil {
		return err
	}
	s.logger.Info(ctx, "user removed", "username", username)
	return nil
}

// Export writes username, email and created_at for every record to path and
// returns the number of rows written.
func (s *userService) Export(ctx context.Context, path string) (int, error) {
	records, err := s.repo.LoadAll(ctx)
	if err != nil {
		return 0, err
	}

	err = filex.WriteAtomic(path, 0o644, func(out io.Writer) error {
		w := csv.NewWriter(out)
		if err := w.Write(ExportHeader); err != nil {
			return fmt.Errorf("write export header: %w", err)
		}
		for _, r := range records {
			if err := w.Write([]string{r.Username, r.Email, r.CreatedAt}); err != nil {
				return fmt.Errorf("write export row %q: %w", r.Username, err)
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return fmt.Errorf("flush export file: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("write export file: %w", err)
	}
	s.logger.Info(ctx, "users exported", "path", path, "count", len(records))
	return len(records), nil
}
