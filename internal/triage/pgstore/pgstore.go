// Package pgstore provides a PostgreSQL implementation of triage.Store.
package pgstore

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linnemanlabs/intake/internal/triage"
)

var tracer = otel.Tracer("github.com/linnemanlabs/intake/internal/triage/pgstore")

//go:embed schema.sql
var schema string

// Store persists assessments in PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// New applies the schema to an already-connected pool and returns a ready
// Store. The caller owns the pool's lifecycle.
func New(ctx context.Context, pool *pgxpool.Pool) (*Store, error) {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{pool: pool}, nil
}

const assessmentColumns = `id, patient, result, source, explanation, created_at, duration_s`

// Get retrieves an assessment by ID.
func (s *Store) Get(ctx context.Context, id string) (*triage.Assessment, bool, error) {
	ctx, span := tracer.Start(ctx, "pgstore.Get", trace.WithAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation.name", "SELECT"),
	))
	defer span.End()

	query := `SELECT ` + assessmentColumns + ` FROM assessments WHERE id = $1`
	a, err := scanAssessmentRow(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, false, err
	}
	if a == nil {
		return nil, false, nil
	}
	return a, true, nil
}

// Put inserts or updates an assessment (upsert on id).
func (s *Store) Put(ctx context.Context, a *triage.Assessment) error {
	ctx, span := tracer.Start(ctx, "pgstore.Put", trace.WithAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation.name", "UPSERT"),
	))
	defer span.End()

	patientJSON, err := json.Marshal(a.Patient)
	if err != nil {
		return fmt.Errorf("marshal patient: %w", err)
	}
	resultJSON, err := json.Marshal(a.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	query := `INSERT INTO assessments (
		id, patient, risk_level, department, confidence, result, source, explanation, created_at, duration_s
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	ON CONFLICT (id) DO UPDATE SET
		patient     = EXCLUDED.patient,
		risk_level  = EXCLUDED.risk_level,
		department  = EXCLUDED.department,
		confidence  = EXCLUDED.confidence,
		result      = EXCLUDED.result,
		source      = EXCLUDED.source,
		explanation = EXCLUDED.explanation,
		duration_s  = EXCLUDED.duration_s`

	_, err = s.pool.Exec(ctx, query,
		a.ID, patientJSON, string(a.Result.RiskLevel), string(a.Result.Department),
		a.Result.ConfidenceScore, resultJSON, string(a.Source), a.Explanation,
		a.CreatedAt, a.Duration,
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("upsert assessment: %w", err)
	}
	return nil
}

// Analytics aggregates stored assessments in SQL rather than loading rows.
func (s *Store) Analytics(ctx context.Context) (*triage.AnalyticsReport, error) {
	ctx, span := tracer.Start(ctx, "pgstore.Analytics", trace.WithAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation.name", "SELECT"),
	))
	defer span.End()

	rep := &triage.AnalyticsReport{
		ByDepartment: make(map[string]int),
		ByRiskLevel:  make(map[string]int),
	}

	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE risk_level = 'High') FROM assessments`,
	).Scan(&rep.TotalAssessments, &rep.HighRisk)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("count assessments: %w", err)
	}

	if err := s.groupCount(ctx, "department", rep.ByDepartment); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if err := s.groupCount(ctx, "risk_level", rep.ByRiskLevel); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return rep, nil
}

func (s *Store) groupCount(ctx context.Context, column string, out map[string]int) error {
	// column is one of two fixed identifiers, never user input
	rows, err := s.pool.Query(ctx,
		`SELECT `+column+`, COUNT(*) FROM assessments GROUP BY `+column)
	if err != nil {
		return fmt.Errorf("group by %s: %w", column, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return fmt.Errorf("scan %s group: %w", column, err)
		}
		out[key] = n
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate %s groups: %w", column, err)
	}
	return nil
}

// scanAssessmentRow scans a single row into a triage.Assessment.
// Returns (nil, nil) when no row is found.
func scanAssessmentRow(row pgx.Row) (*triage.Assessment, error) {
	var (
		a           triage.Assessment
		patientJSON []byte
		resultJSON  []byte
		source      string
	)

	err := row.Scan(&a.ID, &patientJSON, &resultJSON, &source, &a.Explanation, &a.CreatedAt, &a.Duration)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan: %w", err)
	}

	if err := json.Unmarshal(patientJSON, &a.Patient); err != nil {
		return nil, fmt.Errorf("unmarshal patient: %w", err)
	}
	if err := json.Unmarshal(resultJSON, &a.Result); err != nil {
		return nil, fmt.Errorf("unmarshal result: %w", err)
	}
	a.Source = triage.Source(source)

	return &a, nil
}
