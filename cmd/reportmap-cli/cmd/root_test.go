package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "config.toml")}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestNodes(t *testing.T) {
	out, err := run(t, "nodes")
	require.NoError(t, err)
	assert.Contains(t, out, "貸借対照表")
	assert.Contains(t, out, "activity-statement")

	out, err = run(t, "nodes", "--tier", "secondary", "--format", "json")
	require.NoError(t, err)

	var nodes []nodeJSON
	require.NoError(t, json.Unmarshal([]byte(out), &nodes))
	assert.Len(t, nodes, 5)
	for _, n := range nodes {
		assert.Equal(t, "secondary", n.Tier)
		assert.NotEmpty(t, n.Owner)
	}
}

func TestEdgesAndVisible(t *testing.T) {
	out, err := run(t, "edges")
	require.NoError(t, err)
	assert.Contains(t, out, "balance-sheet-notes")

	out, err = run(t, "visible", "--focus", "balance-sheet", "--format", "json")
	require.NoError(t, err)

	var res struct {
		Focus string     `json:"focus"`
		Nodes []nodeJSON `json:"nodes"`
		Edges []edgeJSON `json:"edges"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "balance-sheet", res.Focus)
	assert.Len(t, res.Nodes, 7)
	assert.Len(t, res.Edges, 6)
}

func TestRelated(t *testing.T) {
	out, err := run(t, "related", "ledger", "--format", "json")
	require.NoError(t, err)

	var res map[string][]string
	require.NoError(t, json.Unmarshal([]byte(stripNode(out)), &res))
	assert.Equal(t, []string{"activity-statement", "balance-sheet", "ledger", "trial-balance", "voucher"}, res["highlight"])

	_, err = run(t, "related", "payroll")
	assert.ErrorContains(t, err, "payroll")
}

// stripNode drops the scalar "node" key so the rest decodes as string lists
func stripNode(out string) string {
	var m map[string]any
	if err := json.Unmarshal([]byte(out), &m); err != nil {
		return out
	}
	delete(m, "node")
	b, _ := json.Marshal(m)
	return string(b)
}

func TestRoute(t *testing.T) {
	out, err := run(t, "route", "voucher-ledger")
	require.NoError(t, err)
	assert.Contains(t, out, "(20,15) (30,15)")

	_, err = run(t, "route", "ledger-voucher")
	assert.Error(t, err)
}

func TestPlace(t *testing.T) {
	out, err := run(t, "place", "--container", "10,5,100,40", "--target", "20,15,10,4", "--size", "20,6")
	require.NoError(t, err)
	assert.Contains(t, out, "right left=22 top=9 (absolute 32,14)")

	_, err = run(t, "place", "--container", "0,0,0,0", "--target", "0,0,1,1", "--size", "1,1")
	assert.Error(t, err)
}

func TestDetail(t *testing.T) {
	out, err := run(t, "detail", "edge", "ledger-trial-balance")
	require.NoError(t, err)
	assert.Contains(t, out, "月次集計")

	out, err = run(t, "detail", "node", "balance-sheet", "--focus", "balance-sheet")
	require.NoError(t, err)
	assert.Contains(t, out, "財産目録")
	assert.Contains(t, out, "直接つながる帳票")
}

func TestResolve(t *testing.T) {
	out, err := run(t, "resolve", "740100", "--funding", "designated")
	require.NoError(t, err)
	assert.Contains(t, out, "109100")

	_, err = run(t, "resolve", "740100", "--side", "left")
	assert.Error(t, err)
}

func TestInitValidateExport(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "structure.yaml")

	_, err := run(t, "init", file)
	require.NoError(t, err)

	out, err := run(t, "validate", file)
	require.NoError(t, err)
	assert.Contains(t, out, "10 nodes, 9 edges, 1 pairs, 3 tutorial steps")

	out, err = run(t, "--graph", file, "export", "--db", filepath.Join(dir, "map.db"))
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 10 nodes, 9 edges, 8 styles")

	_, err = run(t, "export")
	assert.ErrorContains(t, err, "db")
}

func TestSimulate(t *testing.T) {
	out, err := run(t, "simulate", "click:balance-sheet", "open:balance-sheet", "escape")
	require.NoError(t, err)
	assert.Contains(t, out, "node:balance-sheet")
	assert.Contains(t, out, "idle")

	_, err = run(t, "simulate", "jump:ledger")
	assert.Error(t, err)
}

func TestOpenPrint(t *testing.T) {
	out, err := run(t, "open", "ledger", "--print")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/general-ledger\n", out)
}

func TestInvalidFormat(t *testing.T) {
	_, err := run(t, "nodes", "--format", "yaml")
	assert.ErrorContains(t, err, "invalid format")
}
