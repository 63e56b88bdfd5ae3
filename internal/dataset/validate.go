package dataset

import (
	"strings"

	apperrors "salespulse/internal/errors"
)

// RequiredColumns is the column contract every uploaded table must satisfy.
// Extra columns are allowed and ignored.
var RequiredColumns = []string{
	"date",
	"month",
	"area",
	"product",
	"sale_count",
	"sale_amount",
	"gst",
	"net_value",
	"profit",
}

// ValidateColumns checks the header row against the required-column
// contract. It returns a SchemaError naming every missing column, not just
// the first, so the caller can correct the upload in one pass.
func ValidateColumns(headers []string) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[normalizeHeader(h)] = true
	}

	var missing []string
	for _, col := range RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		return apperrors.NewSchemaError(missing)
	}
	return nil
}

// normalizeHeader canonicalizes a header cell for contract matching.
func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}
