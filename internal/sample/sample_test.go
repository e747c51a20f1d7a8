package sample

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feewise/billgraph/internal/graph"
)

func TestBuildShape(t *testing.T) {
	g, err := Build()
	require.NoError(t, err)

	require.Equal(t, 20, g.NodeCount())
	require.Equal(t, 27, g.EdgeCount())

	edges := g.Edges()
	count := func(pred func(graph.Edge) bool) int {
		n := 0
		for _, e := range edges {
			if pred(e) {
				n++
			}
		}
		return n
	}

	// Merchant owns the invoice.
	require.Equal(t, 1, count(func(e graph.Edge) bool {
		return e.Source == "billing_entity_merchant" && e.Target == "invoice_info_1"
	}))

	// The invoice fans out to all six fee rates.
	require.Equal(t, 6, count(func(e graph.Edge) bool {
		return e.Source == "invoice_info_1" && strings.HasPrefix(e.Target, "fee_rate_")
	}))

	// Each rate produces exactly one summary, one-to-one by index.
	for _, i := range []string{"1", "2", "3", "4", "5", "6"} {
		require.Equal(t, 1, count(func(e graph.Edge) bool {
			return e.Source == "fee_rate_"+i
		}), i)
		require.Equal(t, 1, count(func(e graph.Edge) bool {
			return e.Source == "fee_rate_"+i && e.Target == "fee_summary_"+i
		}), i)
	}

	// Summaries 4, 5, and 6 converge on settlement 4; the rest map one-to-one.
	require.Equal(t, 3, count(func(e graph.Edge) bool {
		return strings.HasPrefix(e.Source, "fee_summary_") && e.Target == "settlement_4"
	}))
	require.Equal(t, 6, count(func(e graph.Edge) bool {
		return strings.HasPrefix(e.Source, "fee_summary_") && strings.HasPrefix(e.Target, "settlement_")
	}))

	// Every settlement distributes to both downstream entities.
	require.Equal(t, 8, count(func(e graph.Edge) bool {
		return strings.HasPrefix(e.Source, "settlement_") && strings.HasPrefix(e.Target, "billing_entity_")
	}))
}

func TestBuildNodeContent(t *testing.T) {
	g, err := Build()
	require.NoError(t, err)

	doc := g.Document()
	require.Equal(t, "billing_entity_merchant", doc.Nodes[0].ID)
	require.Equal(t, "settlement_4", doc.Nodes[len(doc.Nodes)-1].ID)

	rate, ok := g.Node("fee_rate_1")
	require.True(t, ok)
	require.Equal(t, "fee_rate", rate.Table)
	require.Equal(t, "9.99", rate.Minimal["per_item_amount"])
	require.Equal(t, "PER_ITEM", rate.Minimal["apply_type"])
	require.NotContains(t, rate.Minimal, "uuid")
	require.Equal(t, "J65DRB7XHQQ1RTYJSBSTQQBW7K", rate.Others["uuid"])

	merchant, ok := g.Node("billing_entity_merchant")
	require.True(t, ok)
	require.Equal(t, "MerchantMcMerchantface", merchant.Minimal["name"])
	require.Equal(t, "MERCHANT", merchant.Minimal["entity_type"])
}

func TestBuildIsDeterministic(t *testing.T) {
	first, err := Build()
	require.NoError(t, err)
	second, err := Build()
	require.NoError(t, err)

	a, err := first.MarshalIndent(2)
	require.NoError(t, err)
	b, err := second.MarshalIndent(2)
	require.NoError(t, err)
	require.Equal(t, a, b)
}
