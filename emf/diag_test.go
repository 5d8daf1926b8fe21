package emf

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticReport(t *testing.T) {
	r := NewDiagnosticReport()
	r.Add(Diagnostic{Severity: SevInfo, Offset: 0x40, Issue: "late"})
	r.Add(Diagnostic{Severity: SevCritical, Offset: 0x10, Type: EMREOF, Issue: "early"})
	r.Sort()

	assert.Equal(t, "early", r.Diagnostics[0].Issue)
	assert.True(t, r.HasCriticalIssues())
	assert.True(t, r.HasErrors())
	assert.Equal(t, DiagSummary{Critical: 1, Info: 1}, r.Summary)
	assert.Contains(t, r.FormatCompact(), "0x00000010 [CRITICAL] record 0 EMR_EOF: early")

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"severity":"critical"`)

	assert.Equal(t, "No issues found.\n", NewDiagnosticReport().FormatCompact())
	assert.Equal(t, "Severity(9)", Severity(9).String())
}
