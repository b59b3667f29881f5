// internal/workers/data-access/record-decision-outcome/queries/outcome.go
package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// OutcomeRecord is one audit row per evaluation.
type OutcomeRecord struct {
	ID                 string
	EvaluationID       string
	CaseID             string
	Benefit            string
	Generated          bool
	Valid              bool
	PointsTotal        int
	PointsConditionID  string
	OutcomeConditionID string
	Award              string
	Scenario           string
	Entitled           bool
	ValidationErrors   []byte
	Result             []byte
}

// InsertOutcome writes rec unless a row for its evaluation already exists.
// It returns the id of the stored row and whether this call created it. The
// table name is always quoted.
func InsertOutcome(ctx context.Context, db *sql.DB, table string, rec *OutcomeRecord) (string, bool, error) {
	var id string
	err := db.QueryRowContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (
			id, evaluation_id, case_id, benefit, generated, valid, points_total,
			points_condition_id, outcome_condition_id, award, scenario, entitled,
			validation_errors, result
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (evaluation_id) DO NOTHING
		RETURNING id`, pq.QuoteIdentifier(table)),
		rec.ID, rec.EvaluationID, rec.CaseID, rec.Benefit, rec.Generated, rec.Valid, rec.PointsTotal,
		nullable(rec.PointsConditionID), nullable(rec.OutcomeConditionID), nullable(rec.Award), nullable(rec.Scenario), rec.Entitled,
		rec.ValidationErrors, rec.Result,
	).Scan(&id)

	if errors.Is(err, sql.ErrNoRows) {
		existing, findErr := FindOutcome(ctx, db, table, rec.EvaluationID)
		return existing, false, findErr
	}
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}

// FindOutcome returns the audit row id of an evaluation, or sql.ErrNoRows.
func FindOutcome(ctx context.Context, db *sql.DB, table, evaluationID string) (string, error) {
	var id string
	err := db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT id FROM %s WHERE evaluation_id = $1`, pq.QuoteIdentifier(table)),
		evaluationID,
	).Scan(&id)
	return id, err
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
