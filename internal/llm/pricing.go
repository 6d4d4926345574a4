package llm

import "strings"

// ModelCost is a model's list price in USD per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost prices one request's token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return (float64(inputTokens)*c.InputPerMTok + float64(outputTokens)*c.OutputPerMTok) / 1_000_000
}

// modelCosts covers every model the configurable names resolve to. Prices
// as listed by models.dev on 2026-02-15.
var modelCosts = map[string]ModelCost{
	"claude-haiku-4-5-20251001":  {1, 5},
	"claude-sonnet-4-20250514":   {3, 15},
	"gpt-4o":                     {2.5, 10},
	"gpt-4o-mini":                {0.15, 0.6},
	"gemini-3-flash-preview":     {0.5, 3},
	"gemini-3-pro-preview":       {2, 12},
	"google/gemini-2.5-flash":    {0.3, 2.5},
	"anthropic/claude-haiku-4.5": {1, 5},
}

// LookupCost returns the price of modelID, or nil when it is not listed.
// Dated snapshots such as "gpt-4o-mini-2024-07-18" fall back to the
// longest listed ID they extend.
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	best := ""
	for id := range modelCosts {
		if strings.HasPrefix(modelID, id+"-") && len(id) > len(best) {
			best = id
		}
	}
	if best == "" {
		return nil
	}
	c := modelCosts[best]
	return &c
}
