package graph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feewise/billgraph/internal/models"
	appErr "github.com/feewise/billgraph/pkg/errors"
)

func TestAddRecordSplitsMinimalAndOthers(t *testing.T) {
	g := New()
	require.NoError(t, g.AddRecord("be", models.ExampleBillingEntity()))

	n, ok := g.Node("be")
	require.True(t, ok)
	require.Equal(t, "billing_entity", n.Table)
	require.Contains(t, n.Minimal, "entity_type")
	require.Contains(t, n.Minimal, "name")
	require.Contains(t, n.Others, "uuid")
	require.NotContains(t, n.Others, "entity_type")
}

func TestAddEdgeRequiresKnownEndpoints(t *testing.T) {
	g := New()
	require.NoError(t, g.AddRecord("be", models.ExampleBillingEntity()))
	require.NoError(t, g.AddRecord("inv", models.ExampleInvoiceInfo()))

	require.NoError(t, g.AddEdge("be", "inv"))

	err := g.AddEdge("be", "missing")
	require.Error(t, err)
	require.True(t, appErr.IsCode(err, appErr.CodeValidation))

	err = g.AddEdge("missing", "inv")
	require.Error(t, err)

	// Failed insertions leave no trace.
	require.Equal(t, 1, g.EdgeCount())
}

func TestDuplicateNodeIDRejected(t *testing.T) {
	g := New()
	require.NoError(t, g.AddRecord("be", models.ExampleBillingEntity()))
	err := g.AddRecord("be", models.ExampleInvoiceInfo())
	require.Error(t, err)
	require.True(t, appErr.IsCode(err, appErr.CodeConflict))
	require.Equal(t, 1, g.NodeCount())
}

func TestInvalidRecordNeverBecomesANode(t *testing.T) {
	rate := models.ExampleFeeRate()
	rate.UUID = ""

	g := New()
	err := g.AddRecord("rate", rate)
	require.Error(t, err)
	require.True(t, appErr.IsCode(err, appErr.CodeValidation))
	require.Zero(t, g.NodeCount())
}

func TestDocumentPreservesInsertionOrder(t *testing.T) {
	g := New()
	require.NoError(t, g.AddRecord("z", models.ExampleSettlement()))
	require.NoError(t, g.AddRecord("a", models.ExampleBillingEntity()))
	require.NoError(t, g.AddRecord("m", models.ExampleFeeRate()))
	require.NoError(t, g.AddEdge("z", "a"))
	require.NoError(t, g.AddEdge("a", "m"))

	doc := g.Document()
	require.Equal(t, []string{"z", "a", "m"}, []string{doc.Nodes[0].ID, doc.Nodes[1].ID, doc.Nodes[2].ID})
	require.Equal(t, Edge{Source: "z", Target: "a"}, doc.Edges[0])
	require.Equal(t, Edge{Source: "a", Target: "m"}, doc.Edges[1])
}

func TestMarshalIsDeterministic(t *testing.T) {
	build := func() *Graph {
		g := New()
		require.NoError(t, g.AddRecord("be", models.ExampleBillingEntity()))
		require.NoError(t, g.AddRecord("inv", models.ExampleInvoiceInfo()))
		require.NoError(t, g.AddEdge("be", "inv"))
		return g
	}

	first, err := build().MarshalIndent(2)
	require.NoError(t, err)
	second, err := build().MarshalIndent(2)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
