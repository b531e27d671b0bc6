// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"strings"

	"github.com/H0llyW00dzZ/cstr-exchange/src/internal/heap"
	"github.com/H0llyW00dzZ/cstr-exchange/src/internal/scenario"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// renderResults renders scenario results as a markdown table.
func renderResults(results []scenario.Result) (string, error) {
	rows := make([][]string, 0, len(results))
	for i, r := range results {
		status := "✅ holds"
		if !r.OK {
			status = "❌ violated"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			r.Name,
			r.Provenance.String(),
			r.Want,
			r.Got,
			status,
		})
	}
	return renderMarkdown([]string{"#", "Case", "Provenance", "Want", "Got", "Status"}, rows)
}

// renderStats renders heap ledger counters as a two-column markdown table.
func renderStats(s heap.Stats) (string, error) {
	rows := [][]string{
		{"Allocator", s.Allocator},
		{"Allocations", fmt.Sprintf("%d", s.Allocations)},
		{"Releases", fmt.Sprintf("%d", s.Releases)},
		{"Allocation failures", fmt.Sprintf("%d", s.Failures)},
		{"Ownership violations", fmt.Sprintf("%d", s.Violations)},
		{"Live blocks", fmt.Sprintf("%d", s.LiveBlocks)},
		{"Live bytes", fmt.Sprintf("%d", s.LiveBytes)},
	}
	return renderMarkdown([]string{"📊 METRIC", "📈 VALUE"}, rows)
}

func renderMarkdown(headers []string, rows [][]string) (string, error) {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header(headers)
	if err := table.Bulk(rows); err != nil {
		return "", fmt.Errorf("rendering table: %w", err)
	}
	if err := table.Render(); err != nil {
		return "", fmt.Errorf("rendering table: %w", err)
	}
	buf.WriteString("\n")
	return buf.String(), nil
}
