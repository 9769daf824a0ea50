package runlog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	Store(ctx context.Context, run Run) error
	GetRecent(ctx context.Context, limit int) ([]Run, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Store(ctx context.Context, run Run) error {
	// $N placeholders: required by Postgres, also accepted by the SQLite
	// driver used in tests.
	query := `INSERT INTO schedule_run (
                            id,
                            year,
                            row_count,
                            generated_at
						) VALUES ($1, $2, $3, $4)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, run.ID.String(), run.Year, run.Rows, run.GeneratedAt.UnixMilli())
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return err
	}

	return nil
}

// GetRecent retrieves the most recent schedule generations, newest first,
// limited by the specified number of records.
func (r *RepositoryImpl) GetRecent(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, year, row_count, generated_at
				FROM schedule_run
				ORDER BY generated_at DESC
				LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		err := fmt.Errorf("could not query schedule runs: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	runs := make([]Run, 0, limit)
	for rows.Next() {
		var idString string
		var year int
		var rowCount int
		var generatedAtMillis int64
		if err := rows.Scan(&idString, &year, &rowCount, &generatedAtMillis); err != nil {
			err := fmt.Errorf("could not scan row: %w", err)
			log.Error(err)
			return nil, err
		}
		id, err := uuid.Parse(idString)
		if err != nil {
			err := fmt.Errorf("could not parse run id %q: %w", idString, err)
			log.Error(err)
			return nil, err
		}
		runs = append(runs, Run{
			ID:          id,
			Year:        year,
			Rows:        rowCount,
			GeneratedAt: time.UnixMilli(generatedAtMillis),
		})
	}
	return runs, rows.Err()
}
