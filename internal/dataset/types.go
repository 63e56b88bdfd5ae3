package dataset

import (
	"time"
)

// Record is one transaction row of a sales export. All nine fields are
// required by the schema contract and typed at ingestion.
type Record struct {
	Date       time.Time `json:"date"`
	Month      string    `json:"month"`
	Area       string    `json:"area"`
	Product    string    `json:"product"`
	SaleCount  int64     `json:"sale_count"`
	SaleAmount float64   `json:"sale_amount"`
	GST        float64   `json:"gst"`
	NetValue   float64   `json:"net_value"`
	Profit     float64   `json:"profit"`
}

// Dataset is the validated, ordered sequence of records for one upload.
// It is read-only through the pipeline; stages derive new values from it
// instead of mutating it.
type Dataset []Record

// Day returns the record's date truncated to day granularity in UTC.
func (r Record) Day() time.Time {
	return time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(), 0, 0, 0, 0, time.UTC)
}
