package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/rates/sensitivity"
)

// SQLite stores runs in a local SQLite database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (creating if necessary) the database at path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, time, valuation_date, trade, currency, present_value, method)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Time, r.ValuationDate, r.Trade, r.Currency, r.PresentValue, r.Method,
	)
	return err
}

func (j *SQLite) RecordSensitivities(runID string, cps sensitivity.CurveParameters) error {
	tx, err := j.db.Begin()
	if err != nil {
		return err
	}
	for _, rec := range flatten(runID, cps) {
		if _, err := tx.Exec(`
			INSERT INTO node_sensitivities
			(run_id, curve_name, currency, node_index, value)
			VALUES (?, ?, ?, ?, ?)`,
			rec.RunID, rec.CurveName, rec.Currency, rec.NodeIndex, rec.Value,
		); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// GetRun returns a single run by ID.
func (j *SQLite) GetRun(runID string) (RunRecord, error) {
	var rec RunRecord

	row := j.db.QueryRow(`
		SELECT run_id, time, valuation_date, trade, currency, present_value, method
		FROM runs
		WHERE run_id = ?`, runID)

	err := row.Scan(
		&rec.RunID,
		&rec.Time,
		&rec.ValuationDate,
		&rec.Trade,
		&rec.Currency,
		&rec.PresentValue,
		&rec.Method,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return RunRecord{}, fmt.Errorf("run %q not found", runID)
		}
		return RunRecord{}, err
	}
	return rec, nil
}

// ListSensitivities returns the node sensitivities of a run in curve then
// node order.
func (j *SQLite) ListSensitivities(runID string) ([]NodeSensitivityRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, curve_name, currency, node_index, value
		FROM node_sensitivities
		WHERE run_id = ?
		ORDER BY curve_name ASC, node_index ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []NodeSensitivityRecord
	for rows.Next() {
		var rec NodeSensitivityRecord
		if err := rows.Scan(
			&rec.RunID,
			&rec.CurveName,
			&rec.Currency,
			&rec.NodeIndex,
			&rec.Value,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
