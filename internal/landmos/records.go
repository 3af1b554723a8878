package landmos

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/bytedance/sonic"
)

// Record is one time-stamped GNSS measurement from the LandMOS API.
// Value fields stay untyped: the upstream mixes numbers, numeric strings,
// and nulls, and only the digest decides what counts as numeric.
type Record struct {
	Timestamp   string `json:"timestamp"`
	De          any    `json:"de"`
	Dn          any    `json:"dn"`
	Dh          any    `json:"dh"`
	Sde         any    `json:"sde"`
	Sdn         any    `json:"sdn"`
	Sdh         any    `json:"sdh"`
	Pdop        any    `json:"pdop"`
	NoSatellite any    `json:"no_satellite"`
	Lat         any    `json:"lat"`
	Lng         any    `json:"lng"`
}

// Dataset is the upstream station payload resolved once at the API
// boundary: the verbatim raw body plus the canonical record sequence,
// whichever of the three upstream shapes (bare list, "records" wrapper,
// "data" wrapper) carried it.
type Dataset struct {
	Raw     json.RawMessage
	Records []Record
}

type envelope struct {
	Records []Record `json:"records"`
	Data    []Record `json:"data"`
}

// NewDataset resolves the raw payload into a Dataset. Unrecognized
// shapes yield an empty record list, never an error: the summarizer
// renders those as a no-data notice.
func NewDataset(raw json.RawMessage) *Dataset {
	ds := &Dataset{Raw: raw}

	var list []Record
	if err := sonic.Unmarshal(raw, &list); err == nil {
		ds.Records = list
		return ds
	}

	var env envelope
	if err := sonic.Unmarshal(raw, &env); err == nil {
		// An empty "records" key falls through to "data".
		if len(env.Records) > 0 {
			ds.Records = env.Records
		} else {
			ds.Records = env.Data
		}
	}
	return ds
}

// IsList reports whether the upstream sent a bare record list rather
// than a wrapper object.
func (d *Dataset) IsList() bool {
	trimmed := bytes.TrimLeft(d.Raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}

// Envelope returns the payload as an object, wrapping bare lists under
// a "records" key so responses always embed a JSON object.
func (d *Dataset) Envelope() json.RawMessage {
	if !d.IsList() {
		return d.Raw
	}
	wrapped := make([]byte, 0, len(d.Raw)+12)
	wrapped = append(wrapped, []byte(`{"records":`)...)
	wrapped = append(wrapped, d.Raw...)
	wrapped = append(wrapped, '}')
	return wrapped
}

// numeric coerces a loosely typed field value to float64. Missing,
// null, and non-numeric values report false.
func numeric(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	default:
		return 0, false
	}
}

// truthy mirrors the lat/lng presence check: nil, zero, and empty
// string all count as absent.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case float64:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}
