package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const llmEventsTableName = "llm_request_events"

// Column names of llm_request_events.
const (
	colID           = "id"
	colSequence     = "sequence"
	colTimestamp    = "timestamp"
	colProvider     = "provider"
	colModel        = "model"
	colPurpose      = "purpose"
	colInputTokens  = "input_tokens"
	colOutputTokens = "output_tokens"
	colLatencyMs    = "latency_ms"
	colSuccess      = "success"
	colErrorMessage = "error_message"
	colTemperature  = "temperature"
	colMaxTokens    = "max_tokens"
	colStopReason   = "stop_reason"
)

var (
	llmEventsColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colSequence, Type: field.TypeInt64, Unique: true},
		{Name: colTimestamp, Type: field.TypeTime},
		{Name: colProvider, Type: field.TypeString},
		{Name: colModel, Type: field.TypeString},
		{Name: colPurpose, Type: field.TypeString},
		{Name: colInputTokens, Type: field.TypeInt, Default: 0},
		{Name: colOutputTokens, Type: field.TypeInt, Default: 0},
		{Name: colLatencyMs, Type: field.TypeInt64, Default: 0},
		{Name: colSuccess, Type: field.TypeBool},
		{Name: colErrorMessage, Type: field.TypeString, Default: ""},
		{Name: colTemperature, Type: field.TypeFloat64, Default: 0},
		{Name: colMaxTokens, Type: field.TypeInt, Default: 0},
		{Name: colStopReason, Type: field.TypeString, Default: ""},
	}

	llmEventsTable = &schema.Table{
		Name:       llmEventsTableName,
		Columns:    llmEventsColumns,
		PrimaryKey: []*schema.Column{llmEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "llmrequestevent_timestamp", Columns: []*schema.Column{llmEventsColumns[2]}},
			{Name: "llmrequestevent_provider", Columns: []*schema.Column{llmEventsColumns[3]}},
			{Name: "llmrequestevent_purpose", Columns: []*schema.Column{llmEventsColumns[5]}},
			{Name: "llmrequestevent_success", Columns: []*schema.Column{llmEventsColumns[9]}},
		},
	}

	tables = []*schema.Table{llmEventsTable}
)

// migrate creates or upgrades the tables above.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("new migrate: %w", err)
	}
	if err := m.Create(ctx, tables...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}
