package output

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_AddAndTotal(t *testing.T) {
	report := &Report{}
	report.Add("a.py", 10)
	report.Add("b.py", 5)

	require.Len(t, report.Sources, 2)
	assert.Equal(t, "a.py", report.Sources[0].Name)
	assert.Equal(t, 10, report.Sources[0].Lines)
	assert.Equal(t, 15, report.Total())
}

func TestTextFormatter_Format(t *testing.T) {
	report := &Report{}
	report.Add("foo.py", 42)
	report.Add("-", 3)

	var buf bytes.Buffer
	f := NewTextFormatter()
	require.NoError(t, f.Format(context.Background(), report, &buf))

	assert.Equal(t, "42 foo.py\n3 -\n", buf.String())
	assert.Equal(t, "text", f.Name())
}

func TestTextFormatter_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextFormatter().Format(context.Background(), &Report{}, &buf))
	assert.Empty(t, buf.String())
}

func TestJSONFormatter_Format(t *testing.T) {
	report := &Report{}
	report.Add("foo.py", 42)

	var buf bytes.Buffer
	f := NewJSONFormatter()
	require.NoError(t, f.Format(context.Background(), report, &buf))
	assert.Equal(t, "json", f.Name())

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Sources, 1)
	assert.Equal(t, "foo.py", decoded.Sources[0].Name)
	assert.Equal(t, 42, decoded.Sources[0].Lines)
}
