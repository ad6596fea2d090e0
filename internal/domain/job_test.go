package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateNewJob(t *testing.T) {
	t.Parallel()

	t.Run("defaults status to pending", func(t *testing.T) {
		j := &Job{Company: "Acme", Position: "Dev"}
		require.NoError(t, ValidateNewJob(j))
		require.Equal(t, StatusPending, j.Status)
	})

	t.Run("keeps explicit status", func(t *testing.T) {
		j := &Job{Company: "Acme", Position: "Dev", Status: StatusInterview}
		require.NoError(t, ValidateNewJob(j))
		require.Equal(t, StatusInterview, j.Status)
	})

	t.Run("trims fields", func(t *testing.T) {
		j := &Job{Company: "  Acme ", Position: " Dev "}
		require.NoError(t, ValidateNewJob(j))
		require.Equal(t, "Acme", j.Company)
		require.Equal(t, "Dev", j.Position)
	})

	tests := []struct {
		name  string
		job   Job
		field string
	}{
		{"missing company", Job{Position: "Dev"}, "company"},
		{"company too long", Job{Company: strings.Repeat("a", 51), Position: "Dev"}, "company"},
		{"missing position", Job{Company: "Acme"}, "position"},
		{"position too long", Job{Company: "Acme", Position: strings.Repeat("a", 101)}, "position"},
		{"bad status", Job{Company: "Acme", Position: "Dev", Status: "ghosted"}, "status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNewJob(&tt.job)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestValidatePatch(t *testing.T) {
	t.Parallel()

	s := func(v string) *string { return &v }

	require.NoError(t, ValidatePatch(JobPatch{}))
	require.NoError(t, ValidatePatch(JobPatch{Company: s("Acme")}))
	require.NoError(t, ValidatePatch(JobPatch{Status: s(StatusDecline)}))

	tests := []struct {
		name  string
		patch JobPatch
		field string
	}{
		{"empty company", JobPatch{Company: s("")}, "company"},
		{"blank company", JobPatch{Company: s("   ")}, "company"},
		{"empty position", JobPatch{Position: s("")}, "position"},
		{"company too long", JobPatch{Company: s(strings.Repeat("a", 51))}, "company"},
		{"position too long", JobPatch{Position: s(strings.Repeat("a", 101))}, "position"},
		{"bad status", JobPatch{Status: s("no-reply")}, "status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePatch(tt.patch)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.Equal(t, tt.field, ve.Field)
		})
	}
}
