package dataset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "salespulse/internal/errors"
)

func TestValidateColumns(t *testing.T) {
	tests := []struct {
		name        string
		headers     []string
		wantMissing []string
	}{
		{
			name:    "complete header passes",
			headers: []string{"date", "month", "area", "product", "sale_count", "sale_amount", "gst", "net_value", "profit"},
		},
		{
			name:    "case and whitespace are normalized",
			headers: []string{" Date ", "MONTH", "Area", "Product", "Sale_Count", "Sale_Amount", "GST", "Net_Value", "Profit"},
		},
		{
			name:    "extra columns are ignored",
			headers: []string{"date", "month", "area", "product", "sale_count", "sale_amount", "gst", "net_value", "profit", "discount", "notes"},
		},
		{
			name:        "single missing column is reported",
			headers:     []string{"date", "month", "area", "product", "sale_count", "sale_amount", "net_value", "profit"},
			wantMissing: []string{"gst"},
		},
		{
			name:        "all missing columns are reported together",
			headers:     []string{"date", "area", "product", "sale_count", "sale_amount"},
			wantMissing: []string{"gst", "month", "net_value", "profit"},
		},
		{
			name:        "empty header reports everything",
			headers:     nil,
			wantMissing: []string{"area", "date", "gst", "month", "net_value", "product", "profit", "sale_amount", "sale_count"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColumns(tt.headers)

			if len(tt.wantMissing) == 0 {
				assert.NoError(t, err)
				return
			}

			var schemaErr *apperrors.SchemaError
			require.True(t, errors.As(err, &schemaErr))
			assert.Equal(t, tt.wantMissing, schemaErr.Missing)
		})
	}
}
