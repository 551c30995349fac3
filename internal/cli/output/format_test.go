package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{name: "table", input: "table", want: FormatTable},
		{name: "empty defaults to table", input: "", want: FormatTable},
		{name: "json", input: "json", want: FormatJSON},
		{name: "JSON uppercase", input: "JSON", want: FormatJSON},
		{name: "yaml", input: "yaml", want: FormatYAML},
		{name: "yml alias", input: "yml", want: FormatYAML},
		{name: "whitespace trimmed", input: "  table  ", want: FormatTable},
		{name: "invalid format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.ErrorContains(t, err, "table, json, yaml")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrinter_Messages(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, FormatTable, false)

	printer.Success("connected")
	printer.Warning("world file changed")
	printer.Error("Server not found: 1.2.3.4")

	assert.Equal(t, "connected\nworld file changed\nServer not found: 1.2.3.4\n", buf.String())
}

func TestPrinter_Color(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, FormatTable, true)

	printer.Error("boom")
	assert.Equal(t, "\033[31mboom\033[0m\n", buf.String())
}

func TestPrinter_Reply(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, FormatTable, false)

	printer.Reply("", false)
	assert.Empty(t, buf.String())

	printer.Reply("etc home var", false)
	printer.Reply("/nope: No such file or directory", true)
	assert.Equal(t, "etc home var\n/nope: No such file or directory\n", buf.String())
}

func TestPrinter_Print(t *testing.T) {
	table := NewTableData("IP", "Name")
	table.AddRow("10.0.0.1", "home")

	t.Run("Table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewPrinter(&buf, FormatTable, false).Print(table))
		assert.Contains(t, buf.String(), "10.0.0.1")
		assert.Contains(t, buf.String(), "NAME")
	})

	t.Run("NonRendererFallsBackToJSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewPrinter(&buf, FormatTable, false).Print(map[string]int{"servers": 3}))
		assert.Contains(t, buf.String(), `"servers": 3`)
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, NewPrinter(&buf, Format("xml"), false).Print(table))
	})
}

func TestDefaultPrinter(t *testing.T) {
	printer := DefaultPrinter()
	assert.Equal(t, FormatTable, printer.Format())
	assert.True(t, printer.ColorEnabled())
	assert.NotNil(t, printer.Writer())
}
