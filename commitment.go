package rocksling

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Commitment is an investor commitment to a fund as reported by the Preqin API.
//
// Only the four fields used downstream are kept.
type Commitment struct {
	FundID          int
	FundName        *string             // nil when the API has no name
	FundManagerName *string             // nil when the API has no manager
	CommittedMn     decimal.NullDecimal // committed amount in millions, invalid when missing
}

// UnmarshalJSON decodes a commitment record.
//
// fundId is accepted as a number or a numeric string but must be integral.
// committedMn may be a number, a numeric string, "" or null; the last two
// leave CommittedMn invalid.
func (c *Commitment) UnmarshalJSON(data []byte) error {
	var raw struct {
		FundID          json.RawMessage `json:"fundId"`
		FundName        *string         `json:"fundName"`
		FundManagerName *string         `json:"fundManagerName"`
		CommittedMn     json.RawMessage `json:"committedMn"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id, ok := parseID(unquote(raw.FundID))
	if !ok {
		return fmt.Errorf("invalid fundId %s", string(raw.FundID))
	}

	var committed decimal.NullDecimal
	if s := unquote(raw.CommittedMn); s != "" {
		d, ok := parseDecimal(s)
		if !ok {
			return fmt.Errorf("fund %d: invalid committedMn %s", id, string(raw.CommittedMn))
		}
		committed = decimal.NewNullDecimal(d)
	}

	*c = Commitment{
		FundID:          id,
		FundName:        raw.FundName,
		FundManagerName: raw.FundManagerName,
		CommittedMn:     committed,
	}
	return nil
}

// unquote returns the text of a raw JSON scalar: strings are unquoted, null
// and absent values are "".
func unquote(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
