package wordtrie

import (
	"context"
	"errors"
	"fmt"

	"github.com/oarkflow/squealx"
	"github.com/oarkflow/squealx/connection"
	"go.uber.org/zap"
)

// ErrColumnNotFound is returned when a query row lacks the requested column.
var ErrColumnNotFound = errors.New("wordtrie: column not found")

// LoadSQL connects with cfg, runs query and adds the words found in column
// of every row. Each row counts as one line in the returned stats.
func (d *Dictionary) LoadSQL(ctx context.Context, cfg squealx.Config, query, column string) (LoadStats, error) {
	db, _, err := connection.FromConfig(cfg)
	if err != nil {
		return LoadStats{}, fmt.Errorf("dictionary %s: connect %s: %w", d.name, cfg.Driver, err)
	}
	defer func() {
		_ = db.Close()
	}()
	return d.LoadRows(ctx, db, query, column)
}

// LoadRows is LoadSQL on an open database. The context is checked between
// rows; words added before cancellation stay.
func (d *Dictionary) LoadRows(ctx context.Context, db *squealx.DB, query, column string) (LoadStats, error) {
	if query == "" {
		return LoadStats{}, fmt.Errorf("dictionary %s: no query provided", d.name)
	}
	var stats LoadStats
	err := squealx.SelectEach(db, func(row map[string]any) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		v, ok := row[column]
		if !ok {
			return fmt.Errorf("%w: %s", ErrColumnNotFound, column)
		}
		return d.ingest(&stats, columnText(v))
	}, query)
	if err != nil {
		return stats, err
	}
	d.log.Info("rows loaded",
		zap.Int("rows", stats.Lines),
		zap.Int("words", stats.Words),
		zap.Int("added", stats.Added))
	return stats, nil
}

func columnText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	default:
		return fmt.Sprint(val)
	}
}
