package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo with SQL built by ent's dialect builders.
type eventRepo struct {
	db  *sql.DB
	seq *sequencer
}

var sqlite = entsql.Dialect(dialect.SQLite)

var llmEventSelectColumns = []string{
	colID, colSequence, colTimestamp, colProvider, colModel, colPurpose,
	colInputTokens, colOutputTokens, colLatencyMs, colSuccess,
	colErrorMessage, colTemperature, colMaxTokens, colStopReason,
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	return r.seq.append(ctx, func(tx *sql.Tx, seq int64) error {
		query, args := sqlite.Insert(llmEventsTableName).
			Columns(
				colSequence, colTimestamp, colProvider, colModel, colPurpose,
				colInputTokens, colOutputTokens, colLatencyMs, colSuccess,
				colErrorMessage, colTemperature, colMaxTokens, colStopReason,
			).
			Values(
				seq, time.Now().UTC(), data.Provider, data.Model, data.Purpose,
				data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success,
				data.ErrorMessage, data.Temperature, data.MaxTokens, data.StopReason,
			).
			Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("save LLM request event: %w", err)
		}
		return nil
	})
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error) {
	sel := sqlite.Select(llmEventSelectColumns...).
		From(entsql.Table(llmEventsTableName)).
		OrderBy(entsql.Desc(colSequence))

	if opts.After > 0 {
		sel.Where(entsql.GT(colSequence, opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT(colSequence, opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE(colTimestamp, opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE(colTimestamp, opts.To.UTC()))
	}
	if opts.Purpose != "" {
		sel.Where(entsql.EQ(colPurpose, opts.Purpose))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var records []LLMRequestEventRecord
	for rows.Next() {
		rec, err := scanLLMEvent(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate LLM events: %w", err)
	}
	return records, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error) {
	query, args := sqlite.Select(llmEventSelectColumns...).
		From(entsql.Table(llmEventsTableName)).
		Where(entsql.EQ(colID, id)).
		Query()

	rec, err := scanLLMEvent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error) {
	query, args := sqlite.Select(
		colPurpose,
		entsql.Count("*"),
		entsql.Sum(colInputTokens),
		entsql.Sum(colOutputTokens),
		entsql.Avg(colLatencyMs),
	).
		From(entsql.Table(llmEventsTableName)).
		GroupBy(colPurpose).
		OrderBy(colPurpose).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query usage by purpose: %w", err)
	}
	defer rows.Close()

	var stats []LLMUsageStats
	for rows.Next() {
		var st LLMUsageStats
		var avg float64
		if err := rows.Scan(&st.Purpose, &st.Calls, &st.InputTokens, &st.OutputTokens, &avg); err != nil {
			return nil, fmt.Errorf("scan usage by purpose: %w", err)
		}
		st.AvgLatencyMs = int64(avg)
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate usage by purpose: %w", err)
	}
	return stats, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	query, args := sqlite.Select(
		colModel,
		entsql.Count("*"),
		entsql.Sum(colInputTokens),
		entsql.Sum(colOutputTokens),
	).
		From(entsql.Table(llmEventsTableName)).
		Where(entsql.EQ(colSuccess, true)).
		GroupBy(colModel).
		OrderBy(colModel).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query usage by model: %w", err)
	}
	defer rows.Close()

	var usage []LLMModelUsage
	for rows.Next() {
		var mu LLMModelUsage
		if err := rows.Scan(&mu.Model, &mu.Calls, &mu.InputTokens, &mu.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan usage by model: %w", err)
		}
		usage = append(usage, mu)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate usage by model: %w", err)
	}
	return usage, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLLMEvent(row rowScanner) (*LLMRequestEventRecord, error) {
	var rec LLMRequestEventRecord
	err := row.Scan(
		&rec.ID, &rec.Sequence, &rec.Timestamp, &rec.Provider, &rec.Model, &rec.Purpose,
		&rec.InputTokens, &rec.OutputTokens, &rec.LatencyMs, &rec.Success,
		&rec.ErrorMessage, &rec.Temperature, &rec.MaxTokens, &rec.StopReason,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scan LLM event: %w", err)
	}
	return &rec, nil
}
