package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"pmdd/internal/dosing"
	"pmdd/internal/protocol"
)

// resetFlags restores every flag to its default so tests do not leak into
// each other through the package level command tree.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the CLI with args against an isolated config path.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"PMDD_THEME", "PMDD_LOG_LEVEL", "PMDD_LOG_FILE", "PMDD_DEBUG"} {
		t.Setenv(k, "")
	}
	if os.Getenv("PMDD_CONFIG") == "" {
		t.Setenv("PMDD_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))
	}

	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCalc_Text(t *testing.T) {
	out, err := execute(t, "calc", "--volume", "100", "--no3", "5", "--po4", "1", "--fe", "0")
	require.NoError(t, err)

	assert.Equal(t, "🔎 Redfield ratio NO₃/PO₄ = 5.0 (ideal ≈ 10)\n"+
		"💡 Add Nitrogen (NO₃⁻): 5.00 mg/l → 20.85 ml of Azoto NK Plus\n"+
		"💡 Add Iron (Fe): 0.05 mg/l → 0.25 ml of Ferro PMDD\n"+
		"\n💊 To dose:\n"+
		"  - Azoto NK Plus: 20.85 ml → effect on NO3-\n"+
		"  - Ferro PMDD: 0.25 ml → effect on Fe\n", out)
}

func TestCalc_JSON(t *testing.T) {
	out, err := execute(t, "calc", "--volume", "50", "--no3", "20", "--po4", "2", "--fe", "0.05", "-o", "json")
	require.NoError(t, err)

	var res dosing.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "🔎 Redfield ratio NO₃/PO₄ = 10.0 (ideal ≈ 10)\n✅ The NO₃/PO₄ ratio is already balanced.", res.Message)
	assert.Empty(t, res.Recommendations)
	assert.Contains(t, out, `"recommendations": []`)
}

func TestCalc_Markdown(t *testing.T) {
	out, err := execute(t, "calc", "--volume", "100", "--no3", "30", "--po4", "1", "--fe", "1", "--output", "markdown")
	require.NoError(t, err)

	assert.Contains(t, out, "💡 Add **Phosphorus (PO₄³⁻)**: 2.00 mg/l → **110.50 ml** of Cifo Fosforo (azoto ureico)")
	assert.Contains(t, out, "- Cifo Fosforo (azoto ureico): **110.50 ml** → effect on `PO4-`")
}

func TestCalc_InvalidVolumePrintsNothing(t *testing.T) {
	for _, v := range []string{"", "abc"} {
		out, err := execute(t, "calc", "--volume", v, "--no3", "5", "--po4", "1")
		require.NoError(t, err)
		assert.Empty(t, out, "volume %q", v)
	}
}

func TestCalc_MissingPO4(t *testing.T) {
	out, err := execute(t, "calc", "--volume", "100", "--no3", "5", "--fe", "0.1")
	require.NoError(t, err)
	assert.Equal(t, "⚠️ Insert valid values for NO3 and PO4.\n", out)
}

func TestCalc_UnknownOutput(t *testing.T) {
	_, err := execute(t, "calc", "--volume", "100", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestCatalog(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		out, err := execute(t, "catalog")
		require.NoError(t, err)
		for _, f := range dosing.DefaultCatalog() {
			assert.Contains(t, out, f.Name)
		}
	})

	t.Run("yaml round trips into config", func(t *testing.T) {
		out, err := execute(t, "catalog", "-o", "yaml")
		require.NoError(t, err)

		var doc struct {
			Catalog dosing.Catalog `yaml:"catalog"`
		}
		require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
		assert.Equal(t, dosing.DefaultCatalog(), doc.Catalog)
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, "catalog", "-o", "json")
		require.NoError(t, err)

		var c dosing.Catalog
		require.NoError(t, json.Unmarshal([]byte(out), &c))
		assert.Len(t, c, 4)
	})
}

func TestProtocol(t *testing.T) {
	out, err := execute(t, "protocol", "--raw")
	require.NoError(t, err)
	assert.Equal(t, protocol.Markdown(), out)

	out, err = execute(t, "protocol", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "Bottle 1")
	assert.Contains(t, out, "potassium nitrate")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pmdd", "config.yaml")
	t.Setenv("PMDD_CONFIG", path)

	out, err := execute(t, "init-config")
	require.NoError(t, err)
	assert.Contains(t, out, path)
	require.FileExists(t, path)

	_, err = execute(t, "init-config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "init-config", "--force")
	require.NoError(t, err)

	custom := "catalog:\n  - {name: Strong NK, concentration: 50, effect: NO3-}\n  - {name: Iron, concentration: 10, effect: Fe}\n"
	require.NoError(t, os.WriteFile(path, []byte(custom), 0644))

	out, err = execute(t, "calc", "--volume", "100", "--no3", "5", "--po4", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Strong NK: 10.00 ml → effect on NO3-")
	assert.Contains(t, out, "Iron: 0.50 ml → effect on Fe")

	out, err = execute(t, "--config", path, "catalog")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "Strong NK"))
	assert.NotContains(t, out, "Azoto")
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog:\n  - {name: Bad, concentration: -1, effect: Fe}\n"), 0644))

	_, err := execute(t, "--config", path, "calc", "--volume", "100")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid fertilizer catalog")
}

func TestInitConfig_ReplacesInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog:\n  - {name: Bad, concentration: -1, effect: Fe}\n"), 0644))

	_, err := execute(t, "--config", path, "init-config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	out, err := execute(t, "--config", path, "init-config", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	out, err = execute(t, "--config", path, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "Azoto NK Plus")
	assert.NotContains(t, out, "Bad")
}

func TestCalc_TieRoundsUp(t *testing.T) {
	out, err := execute(t, "calc", "--volume", "50", "--no3", "20.5", "--po4", "2", "-o", "json")
	require.NoError(t, err)

	var res dosing.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Recommendations, 1)
	assert.Equal(t, 0.13, res.Recommendations[0].DoseMl)
	assert.Contains(t, res.Message, "= 10.3 (ideal ≈ 10)")
	assert.Contains(t, res.Message, "**0.13 ml** of Ferro PMDD")
}

func TestCalc_HugeVolumeStaysValidJSON(t *testing.T) {
	out, err := execute(t, "calc", "--volume", "1e308", "--no3", "5", "--po4", "1", "--fe", "1", "-o", "json")
	require.NoError(t, err)

	var res dosing.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Empty(t, res.Recommendations)
	assert.Contains(t, res.Message, "out of range")
}
