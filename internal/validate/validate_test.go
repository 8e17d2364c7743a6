package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gong-mcp/internal/domain"
	"gong-mcp/internal/validate"
)

func TestIdentifier(t *testing.T) {
	valid := []string{"1", "0", "1234567890", strings.Repeat("9", 20)}
	for _, s := range valid {
		assert.NoError(t, validate.Identifier(s), "expected %q to be accepted", s)
	}

	invalid := []string{"", "abc", "123a", "12 34", " 123", "123 ", "-1", "1.5", strings.Repeat("9", 21)}
	for _, s := range invalid {
		err := validate.Identifier(s)
		require.Error(t, err, "expected %q to be rejected", s)
		assert.Equal(t, "must be a numeric string up to 20 digits", err.Error())
	}
}

func TestTimestamp(t *testing.T) {
	valid := []string{
		"2024-01-01T00:00:00Z",
		"2024-01-01T23:59:59+02:00",
		"2024-06-15T12:30:00-07:00",
		"2024-01-01T00:00:00.123Z",
		"2024-01-01T00:00:00.999999+05:30",
	}
	for _, s := range valid {
		assert.NoError(t, validate.Timestamp(s), "expected %q to be accepted", s)
	}

	invalid := []string{
		"",
		"2024-01-01",           // date only
		"2024-01-01T00:00:00",  // no timezone
		"2024-01-01 00:00:00Z", // space separator
		"01/01/2024",
		"2024-13-01T00:00:00Z", // invalid month
		"2024-01-32T00:00:00Z", // invalid day
		"yesterday",
	}
	for _, s := range invalid {
		err := validate.Timestamp(s)
		require.Error(t, err, "expected %q to be rejected", s)
		assert.Equal(t, "must be a valid ISO 8601 datetime with timezone", err.Error())
	}
}

func TestCollectorCollectsAllViolations(t *testing.T) {
	var c validate.Collector
	c.Required("callId", "", validate.Identifier)
	c.Optional("workspaceId", "abc", validate.Identifier)
	c.Optional("cursor", "", validate.Identifier) // absent optional: no check

	err := c.Err()
	require.Error(t, err)

	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.KindValidation, de.Kind)
	assert.Contains(t, err.Error(), "Validation error:")
	assert.Contains(t, err.Error(), "callId: is required")
	assert.Contains(t, err.Error(), "workspaceId: must be a numeric string up to 20 digits")
}

func TestCollectorEachIndexesPaths(t *testing.T) {
	var c validate.Collector
	c.Each("callIds", []string{"123", "bad", "456", "also bad"}, validate.Identifier)

	err := c.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "callIds[1]:")
	assert.Contains(t, err.Error(), "callIds[3]:")
	assert.NotContains(t, err.Error(), "callIds[0]")
	assert.NotContains(t, err.Error(), "callIds[2]")
}

func TestDateOrder(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr bool
	}{
		{"from before to", "2024-01-01T00:00:00Z", "2024-02-01T00:00:00Z", false},
		{"equal instants", "2024-01-01T00:00:00Z", "2024-01-01T00:00:00Z", true},
		{"from after to", "2024-02-01T00:00:00Z", "2024-01-01T00:00:00Z", true},
		{"equal instants across zones", "2024-01-01T02:00:00+02:00", "2024-01-01T00:00:00Z", true},
		{"ordered across zones", "2024-01-01T00:00:00+02:00", "2024-01-01T00:00:00Z", false},
		{"from only", "2024-01-01T00:00:00Z", "", false},
		{"to only", "", "2024-01-01T00:00:00Z", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c validate.Collector
			c.DateOrder(tt.from, tt.to)
			err := c.Err()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "fromDateTime must be before toDateTime")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCollectorZeroValueIsValid(t *testing.T) {
	var c validate.Collector
	assert.NoError(t, c.Err())
}
