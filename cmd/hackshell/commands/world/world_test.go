package world

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackshell/hackshell/pkg/world"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()

	var buf bytes.Buffer
	Cmd.SetOut(&buf)
	Cmd.SetArgs(args)
	require.NoError(t, Cmd.Execute())
	return buf.String()
}

func TestListServers(t *testing.T) {
	w := world.Generate(world.GenerateOptions{Servers: 4, Seed: 11})

	list := listServers(w)
	require.Len(t, list, 5)

	homes := 0
	for i, row := range list {
		if i > 0 {
			assert.Less(t, list[i-1].IP, row.IP)
		}
		if row.Home {
			homes++
			assert.Equal(t, w.Home.IP, row.IP)
			assert.Equal(t, []string{world.HomeUsername}, row.Users)
		}
		assert.Positive(t, row.Entries)
	}
	assert.Equal(t, 1, homes)

	rows := list.Rows()
	require.Len(t, rows, 5)
	assert.Len(t, rows[0], len(list.Headers()))
}

func TestGenerateThenList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")

	out := execute(t, "generate", "--servers", "3", "--seed", "5", "--force", "-o", path)
	assert.Contains(t, out, "World with 4 servers written to "+path)

	out = execute(t, "list", "--world", path, "-o", "json")
	var rows []serverRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Len(t, rows, 4)

	out = execute(t, "list", "--world", path, "-o", "table")
	assert.Contains(t, out, "SECURITY")
	assert.Contains(t, out, "(home)")
}

func TestSchema(t *testing.T) {
	out := execute(t, "schema")
	assert.Contains(t, out, `"security_level"`)
	assert.Contains(t, out, "Hackshell World")
}
