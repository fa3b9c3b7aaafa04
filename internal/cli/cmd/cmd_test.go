package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/berrythewa/copycopy/internal/actions"
	"github.com/berrythewa/copycopy/internal/suggest"
	"github.com/berrythewa/copycopy/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv points the config and data directories at a temp dir and writes a
// config with the NLP capabilities switched off.
func testEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("COPYCOPY_CONFIG_DIR", filepath.Join(dir, "config"))
	t.Setenv("COPYCOPY_DATA_DIR", filepath.Join(dir, "data"))
	t.Setenv("COPYCOPY_TEMP_DIR", filepath.Join(dir, "tmp"))

	cfgPath := filepath.Join(dir, "config", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(cfgPath), 0o755))
	yaml := `log:
  level: error
entity:
  enabled: true
  data_detector: false
  language: false
  names: false
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(yaml), 0o644))
	return dir
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--no-color"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestClassifyCommand(t *testing.T) {
	testEnv(t)

	out, err := run(t, "", "classify", "--json", "#ff8800")
	require.NoError(t, err)

	var result types.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, types.KindPlainText, result.Kind)
	assert.Equal(t, types.EntityHexColor, result.Entity)
	assert.Equal(t, "Text (7 chars): #ff8800", result.Summary)

	out, err = run(t, "", "classify", "--json", "--url", "https://example.com/a")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, types.KindURL, result.Kind)
	assert.Equal(t, "example.com", result.Host)
}

func TestClassifyStdin(t *testing.T) {
	testEnv(t)

	out, err := run(t, "someone@example.com", "classify", "--stdin", "--json")
	require.NoError(t, err)

	var result types.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, types.EntityEmail, result.Entity)
}

func TestEntityCommand(t *testing.T) {
	testEnv(t)

	out, err := run(t, "", "entity", "550e8400-e29b-41d4-a716-446655440000")
	require.NoError(t, err)
	assert.Equal(t, "uuid\n", out)

	out, err = run(t, "", "entity", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "email")
	assert.Contains(t, out, "json")
}

func TestSuggestCommand(t *testing.T) {
	testEnv(t)

	out, err := run(t, "", "suggest", "--json", "--bundle-id", "com.apple.Terminal", "ls -la")
	require.NoError(t, err)

	var payload struct {
		Suggestions []suggest.Suggestion `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))

	var titles []string
	for _, s := range payload.Suggestions {
		titles = append(titles, s.Title)
	}
	assert.Contains(t, titles, "Search the web")
	assert.Contains(t, titles, "Open as temporary file")
	assert.Contains(t, titles, "Search on Google")
}

func TestSuggestSaveTemp(t *testing.T) {
	dir := testEnv(t)

	out, err := run(t, "", "suggest", "--json", "--builtin-only", "--save-temp", "--bundle-id", "com.microsoft.VSCode", "func main() {}")
	require.NoError(t, err)

	var payload struct {
		Suggestions []suggest.Suggestion `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))

	var saved []string
	for _, s := range payload.Suggestions {
		if s.Action == actions.SaveTempFile {
			saved = append(saved, s.Paths...)
		}
	}
	require.Len(t, saved, 1)
	assert.Equal(t, filepath.Join(dir, "tmp"), filepath.Dir(saved[0]))

	data, err := os.ReadFile(saved[0])
	require.NoError(t, err)
	assert.Equal(t, "func main() {}", string(data))

	_, err = run(t, "", "config", "clean")
	require.NoError(t, err)
	_, err = os.Stat(saved[0])
	assert.True(t, os.IsNotExist(err))
}

func TestActionsCommands(t *testing.T) {
	testEnv(t)

	_, err := run(t, "", "actions", "add", "Docs Search",
		"--template", "https://pkg.go.dev/search?q={text:encoded}", "--content", "text")
	require.NoError(t, err)

	out, err := run(t, "", "actions", "list", "--json")
	require.NoError(t, err)
	var list []actions.CustomAction
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list, len(actions.DefaultActions())+1)
	last := len(list)
	assert.Equal(t, "Docs Search", list[last-1].Name)

	_, err = run(t, "", "actions", "move", "Docs Search", "1")
	assert.Error(t, err, "names are not references")

	_, err = run(t, "", "actions", "move", list[last-1].ID.String(), "1")
	require.NoError(t, err)

	out, err = run(t, "", "actions", "disable", "1")
	require.NoError(t, err)
	assert.Contains(t, out, `Disabled "Docs Search"`)

	_, err = run(t, "", "actions", "remove", "2")
	assert.Error(t, err, "built-in actions cannot be removed")

	out, err = run(t, "", "actions", "remove", "1")
	require.NoError(t, err)
	assert.Contains(t, out, `Removed "Docs Search"`)

	_, err = run(t, "", "actions", "reset")
	assert.Error(t, err)
	_, err = run(t, "", "actions", "reset", "--force")
	require.NoError(t, err)
}

func TestConfigCommands(t *testing.T) {
	dir := testEnv(t)
	cfgPath := filepath.Join(dir, "config", "config.yaml")

	_, err := run(t, "", "config", "init")
	assert.Error(t, err, "existing config is not overwritten")

	out, err := run(t, "", "config", "init", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized at: "+cfgPath)

	out, err = run(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "double_copy_threshold: 280ms")

	out, err = run(t, "", "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, cfgPath)

	out, err = run(t, "", "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("log:\n  level: loud\n"), 0o644))
	_, err = run(t, "", "config", "validate", bad)
	assert.ErrorContains(t, err, "log.level")
}
