package users

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/mailadmin/internal/filex"
	"github.com/dmitrijs2005/mailadmin/internal/logging"
)

type CSVRepository struct {
	path   string
	logger logging.Logger
}

func NewCSVRepository(path string, logger logging.Logger) *CSVRepository {
	return &CSVRepository{path: path, logger: logger}
}

// Path returns the backing file location.
func (r *CSVRepository) Path() string {
	return r.path
}

func (r *CSVRepository) EnsureExists(ctx context.Context) error {
	_, err := os.Stat(r.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat users file: %w", err)
	}
	r.logger.Info(ctx, "creating users file", "path", r.path)
	return r.write(nil)
}

func (r *CSVRepository) LoadAll(ctx context.Context) ([]Record, error) {
	if err := r.EnsureExists(ctx); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open users file: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(bufio.NewReader(f))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read users header: %w", err)
	}
	index := headerIndex(header)

	var (
		records []Record
		seen    = make(map[string]struct{})
	)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read users file: %w", err)
		}
		rec := fromRow(index, row)
		if _, dup := seen[rec.Username]; dup {
			r.logger.Warn(ctx, "duplicate username in users file", "username", rec.Username)
		}
		seen[rec.Username] = struct{}{}
		records = append(records, rec)
	}
	return records, nil
}

func (r *CSVRepository) SaveAll(ctx context.Context, records []Record) error {
	if err := r.write(records); err != nil {
		return err
	}
	r.logger.Debug(ctx, "users file rewritten", "path", r.path, "records", len(records))
	return nil
}

// write replaces the file with header plus records.
func (r *CSVRepository) write(records []Record) error {
	return filex.WriteAtomic(r.path, 0o600, func(out io.Writer) error {
		w := csv.NewWriter(out)
		if err := w.Write(Header); err != nil {
			return fmt.Errorf("write users header: %w", err)
		}
		for _, rec := range records {
			if err := w.Write(rec.row()); err != nil {
				return fmt.Errorf("write user %q: %w", rec.Username, err)
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return fmt.Errorf("flush users file: %w", err)
		}
		return nil
	})
}
