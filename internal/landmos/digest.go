package landmos

import (
	"fmt"
	"strings"
)

// Field labels used in digests handed to the text model.
var fieldLabels = map[string]string{
	"de":           "East displacement (m)",
	"dn":           "North displacement (m)",
	"dh":           "Height displacement (m)",
	"sde":          "East displacement S.D. (m)",
	"sdn":          "North displacement S.D. (m)",
	"sdh":          "Height displacement S.D. (m)",
	"pdop":         "PDOP",
	"no_satellite": "Satellite count",
	"lat":          "Latitude",
	"lng":          "Longitude",
}

var displacementKeys = []string{"de", "dn", "dh"}
var qualityKeys = []string{"sde", "sdn", "sdh", "pdop", "no_satellite"}

func fieldValue(r Record, key string) any {
	switch key {
	case "de":
		return r.De
	case "dn":
		return r.Dn
	case "dh":
		return r.Dh
	case "sde":
		return r.Sde
	case "sdn":
		return r.Sdn
	case "sdh":
		return r.Sdh
	case "pdop":
		return r.Pdop
	case "no_satellite":
		return r.NoSatellite
	case "lat":
		return r.Lat
	case "lng":
		return r.Lng
	default:
		return nil
	}
}

// Summarize turns a station record sequence into the compact text digest
// fed to the text model: counts, time span, location, per-field statistics,
// and a few sample rows. Records with missing or non-numeric values for a
// field are excluded from that field's statistics.
func Summarize(records []Record, statCode string) string {
	if len(records) == 0 {
		return fmt.Sprintf("Station: %s\nNo data records found.", statCode)
	}

	total := len(records)
	lines := []string{
		fmt.Sprintf("Station: %s", statCode),
		fmt.Sprintf("Total data points: %d", total),
	}

	firstTS := records[0].Timestamp
	if firstTS == "" {
		firstTS = "?"
	}
	lastTS := records[total-1].Timestamp
	if lastTS == "" {
		lastTS = "?"
	}
	lines = append(lines, fmt.Sprintf("Time range: %s to %s", firstTS, lastTS))

	if truthy(records[0].Lat) && truthy(records[0].Lng) {
		lines = append(lines, fmt.Sprintf("Location: lat=%v, lng=%v", records[0].Lat, records[0].Lng))
	}

	lines = append(lines, "\n--- Displacement Statistics ---")
	for _, key := range displacementKeys {
		if stat := fieldStats(records, key); stat != "" {
			lines = append(lines, stat)
		}
	}

	lines = append(lines, "\n--- Data Quality ---")
	for _, key := range qualityKeys {
		if stat := fieldStats(records, key); stat != "" {
			lines = append(lines, stat)
		}
	}

	lines = append(lines, "\nFirst 3 records (timestamp, de, dn, dh):")
	for _, r := range records[:min(3, total)] {
		lines = append(lines, "  "+sampleRow(r))
	}

	if total > 6 {
		lines = append(lines, "Last 3 records:")
		for _, r := range records[total-3:] {
			lines = append(lines, "  "+sampleRow(r))
		}
	}

	return strings.Join(lines, "\n")
}

// fieldStats renders min/max/mean and first-to-last change over the
// numeric-valid subsequence of one field, or "" when no record has a
// numeric value for it.
func fieldStats(records []Record, key string) string {
	var vals []float64
	for _, r := range records {
		if v, ok := numeric(fieldValue(r, key)); ok {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return ""
	}

	mn, mx := vals[0], vals[0]
	sum := 0.0
	for _, v := range vals {
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
		sum += v
	}
	mean := sum / float64(len(vals))
	change := vals[len(vals)-1] - vals[0]

	label := fieldLabels[key]
	if label == "" {
		label = key
	}
	return fmt.Sprintf("%s: min=%.4f, max=%.4f, mean=%.4f, total_change=%+.4f", label, mn, mx, mean, change)
}

func sampleRow(r Record) string {
	parts := make([]string, 0, 4)
	if r.Timestamp != "" {
		parts = append(parts, "timestamp="+r.Timestamp)
	}
	for _, key := range displacementKeys {
		if v := fieldValue(r, key); v != nil {
			parts = append(parts, fmt.Sprintf("%s=%v", key, v))
		}
	}
	return strings.Join(parts, ", ")
}
