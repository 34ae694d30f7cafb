package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/racelens/racelens/internal/logger"
	"github.com/racelens/racelens/internal/models"
	"github.com/racelens/racelens/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

const entryColumns = "id, name, team, race, race_num, race_category, placement, total_time, total_seconds, points, lap2, lap3, lap4, penalty"

type entryRepository struct {
	db *sql.DB
}

// NewEntryRepository creates a new EntryRepository implementation
func NewEntryRepository(db *sql.DB) repository.EntryRepository {
	return &entryRepository{db: db}
}

func (r *entryRepository) ReplaceAll(ctx context.Context, entries []models.RaceEntry) error {
	log := logger.FromContext(ctx).WithPrefix("entry_repo")
	log.Debug("replacing dataset with %d entries", len(entries))

	return tx(ctx, r.db, func(t *sql.Tx) error {
		if _, err := t.ExecContext(ctx, `DELETE FROM entries`); err != nil {
			return err
		}
		stmt, err := t.PrepareContext(ctx, `
INSERT INTO entries (name, team, race, race_num, race_category, placement, total_time, total_seconds, points, lap2, lap3, lap4, penalty)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, e := range entries {
			if _, err := stmt.ExecContext(ctx,
				e.Name, e.Team, e.Race, e.RaceNum, e.RaceCategory, e.Placement, e.TotalTime,
				e.TotalSeconds, e.Points, e.Lap2, e.Lap3, e.Lap4, e.Penalty,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *entryRepository) List(ctx context.Context, filter models.EntryFilter) ([]models.RaceEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("entry_repo")
	log.Debug("listing entries: race=%q, team=%q, category=%q",
		filter.Race, filter.Team, filter.Category)

	query := sqlBuilder.Select(
		"id", "name", "team", "race", "race_num", "race_category", "placement",
		"total_time", "total_seconds", "points", "lap2", "lap3", "lap4", "penalty",
	).From("entries")

	// Race filters by substring so "Race 2" matches "Race 2 - Manti";
	// the rest are exact. instr is case-sensitive, keeping the same
	// semantics as the in-memory analytics filter (LIKE folds ASCII
	// case).
	if filter.Race != "" && filter.Race != "all" {
		query = query.Where(squirrel.Expr("instr(race, ?) > 0", filter.Race))
	}
	if filter.Team != "" {
		query = query.Where(squirrel.Eq{"team": filter.Team})
	}
	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"race_category": filter.Category})
	}
	query = query.OrderBy("id ASC")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list entries: %v", err)
		return nil, err
	}
	defer rows.Close()

	var entries []models.RaceEntry
	for rows.Next() {
		var e models.RaceEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Team, &e.Race, &e.RaceNum, &e.RaceCategory, &e.Placement,
			&e.TotalTime, &e.TotalSeconds, &e.Points, &e.Lap2, &e.Lap3, &e.Lap4, &e.Penalty); err != nil {
			log.Error("failed to scan entry row: %v", err)
			return nil, err
		}
		entries = append(entries, e)
	}
	log.Debug("found %d entries", len(entries))
	return entries, rows.Err()
}

func (r *entryRepository) Count(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("entry_repo")

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&count)
	if err != nil {
		log.Error("failed to count entries: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *entryRepository) Categories(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx).WithPrefix("entry_repo")

	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT race_category FROM entries ORDER BY race_category ASC`)
	if err != nil {
		log.Error("failed to query categories: %v", err)
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			log.Error("failed to scan category row: %v", err)
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *entryRepository) Races(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx).WithPrefix("entry_repo")

	rows, err := r.db.QueryContext(ctx, `SELECT race FROM entries GROUP BY race ORDER BY MIN(race_num) ASC, race ASC`)
	if err != nil {
		log.Error("failed to query races: %v", err)
		return nil, err
	}
	defer rows.Close()

	var races []string
	for rows.Next() {
		var race string
		if err := rows.Scan(&race); err != nil {
			log.Error("failed to scan race row: %v", err)
			return nil, err
		}
		races = append(races, race)
	}
	return races, rows.Err()
}
