package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Filter is an equality filter keyed by the record's json field names.
type Filter map[string]any

// Fields flattens a record to its json field map.
func Fields(rec any) (map[string]any, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (f Filter) Match(rec any) bool {
	if len(f) == 0 {
		return true
	}
	fields, err := Fields(rec)
	if err != nil {
		return false
	}
	return f.matchFields(fields)
}

func (f Filter) matchFields(fields map[string]any) bool {
	for k, want := range f {
		if !equal(fields[k], want) {
			return false
		}
	}
	return true
}

func equal(got, want any) bool {
	if got == nil || want == nil {
		return got == nil && want == nil
	}
	if gf, ok := number(got); ok {
		if wf, ok := number(want); ok {
			return gf == wf
		}
	}
	return fmt.Sprint(got) == fmt.Sprint(want)
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// Apply filters, orders and limits records in process. Ordering is stable so
// ties keep input order.
func Apply[T Record](recs []T, q Query) ([]T, error) {
	type row struct {
		rec    T
		fields map[string]any
	}

	rows := make([]row, 0, len(recs))
	for _, r := range recs {
		fields, err := Fields(r)
		if err != nil {
			return nil, err
		}
		if q.Where.matchFields(fields) {
			rows = append(rows, row{rec: r, fields: fields})
		}
	}

	if q.OrderBy != "" {
		sort.SliceStable(rows, func(i, j int) bool {
			c := compare(rows[i].fields[q.OrderBy], rows[j].fields[q.OrderBy])
			if q.Desc {
				return c > 0
			}
			return c < 0
		})
	}

	if q.Limit > 0 && len(rows) > q.Limit {
		rows = rows[:q.Limit]
	}

	out := make([]T, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.rec)
	}
	return out, nil
}

func compare(a, b any) int {
	if af, ok := number(a); ok {
		if bf, ok := number(b); ok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			}
			return 0
		}
	}

	as, bs := fmt.Sprint(a), fmt.Sprint(b)
	if a == nil {
		as = ""
	}
	if b == nil {
		bs = ""
	}

	if at, err := time.Parse(time.RFC3339Nano, as); err == nil {
		if bt, err := time.Parse(time.RFC3339Nano, bs); err == nil {
			return at.Compare(bt)
		}
	}

	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	}
	return 0
}

// Merge overlays patch on rec and decodes the result into dst.
func Merge(rec any, patch map[string]any, dst any) error {
	if _, ok := patch["id"]; ok {
		return ErrImmutableID
	}
	fields, err := Fields(rec)
	if err != nil {
		return err
	}
	for k, v := range patch {
		fields[k] = v
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
