package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// NamedSeries is one keyed numeric sequence. Nil entries are missing values.
type NamedSeries struct {
	Key    string     `json:"key"`
	Values []*float64 `json:"values"`
}

// SeriesList is an ordered list of keyed series. Upstream producers emit it as
// a JSON object whose key order is significant, so decoding keeps that order.
type SeriesList []NamedSeries

// Keys returns the series keys in list order.
func (s SeriesList) Keys() []string {
	keys := make([]string, len(s))
	for i, ns := range s {
		keys[i] = ns.Key
	}
	return keys
}

// Lookup returns the values stored under key.
func (s SeriesList) Lookup(key string) ([]*float64, bool) {
	for _, ns := range s {
		if ns.Key == key {
			return ns.Values, true
		}
	}
	return nil, false
}

// UnmarshalJSON accepts either {"key": [...], ...} or [{"key": ..., "values": [...]}, ...].
func (s *SeriesList) UnmarshalJSON(data []byte) error {
	var out SeriesList
	seen := make(map[string]struct{})
	add := func(ns NamedSeries) error {
		if _, dup := seen[ns.Key]; dup {
			return fmt.Errorf("duplicate series key %q", ns.Key)
		}
		seen[ns.Key] = struct{}{}
		out = append(out, ns)
		return nil
	}

	err := decodeOrdered(data,
		func(key string, dec *json.Decoder) error {
			var values []*float64
			if err := dec.Decode(&values); err != nil {
				return fmt.Errorf("series %q: %w", key, err)
			}
			return add(NamedSeries{Key: key, Values: values})
		},
		func(dec *json.Decoder) error {
			var ns NamedSeries
			if err := dec.Decode(&ns); err != nil {
				return err
			}
			return add(ns)
		},
	)
	if err != nil {
		return err
	}
	*s = out
	return nil
}

// MarshalJSON writes the list as a JSON object in list order.
func (s SeriesList) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ns := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(ns.Key)
		if err != nil {
			return nil, err
		}
		values, err := json.Marshal(ns.Values)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(values)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DecompositionResult is the model-level decomposition handed over by the estimator.
// Every sequence has the same length as Dates.
type DecompositionResult struct {
	Dates         []string   `json:"dates"`
	Actual        []*float64 `json:"actual"`
	Predicted     []*float64 `json:"predicted"`
	Contributions SeriesList `json:"contributions"`
}

// GroupDecompositionResult is the decomposition of a single group into its variables.
type GroupDecompositionResult struct {
	Group         string     `json:"group"`
	Dates         []string   `json:"dates"`
	Variables     []string   `json:"variables"`
	Contributions SeriesList `json:"contributions"`
	Total         []*float64 `json:"total"`
}

// GroupList is an ordered list of group decompositions, decoded from a JSON
// object keyed by group name.
type GroupList []GroupDecompositionResult

// Find returns the group with the given name.
func (g GroupList) Find(name string) (GroupDecompositionResult, bool) {
	for _, grp := range g {
		if grp.Group == name {
			return grp, true
		}
	}
	return GroupDecompositionResult{}, false
}

// Names returns the group names in list order.
func (g GroupList) Names() []string {
	names := make([]string, len(g))
	for i, grp := range g {
		names[i] = grp.Group
	}
	return names
}

// UnmarshalJSON accepts either {"Media": {...}, ...} or [{"group": "Media", ...}, ...].
func (g *GroupList) UnmarshalJSON(data []byte) error {
	var out GroupList
	err := decodeOrdered(data,
		func(key string, dec *json.Decoder) error {
			var grp GroupDecompositionResult
			if err := dec.Decode(&grp); err != nil {
				return fmt.Errorf("group %q: %w", key, err)
			}
			grp.Group = key
			out = append(out, grp)
			return nil
		},
		func(dec *json.Decoder) error {
			var grp GroupDecompositionResult
			if err := dec.Decode(&grp); err != nil {
				return err
			}
			out = append(out, grp)
			return nil
		},
	)
	if err != nil {
		return err
	}
	*g = out
	return nil
}

// ModelPayload is the on-disk evaluation payload of one fitted model.
type ModelPayload struct {
	Model string `json:"model"`
	DecompositionResult
	Groups    GroupList          `json:"groups,omitempty"`
	Variables []VariableSnapshot `json:"variables,omitempty"`
}

// AlignedRecord is one time-aligned row of chart-ready data.
// Total is only set for group drilldowns.
type AlignedRecord struct {
	Date      string              `json:"date"`
	Timestamp time.Time           `json:"timestamp"`
	Values    map[string]*float64 `json:"values"`
	Total     *float64            `json:"total,omitempty"`
}

// Value returns the value for column, resolving TotalColumn to Total
// when the record carries no series under that name.
func (r AlignedRecord) Value(column string) (*float64, bool) {
	if v, ok := r.Values[column]; ok {
		return v, true
	}
	if column == TotalColumn && r.Total != nil {
		return r.Total, true
	}
	return nil, false
}

// GroupSeries is the stacked contribution-by-group view.
type GroupSeries struct {
	GroupKeys []string        `json:"group_keys"`
	Records   []AlignedRecord `json:"records"`
}

// SeriesResult is a chart-ready series bundle handed to the output writers.
type SeriesResult struct {
	Kind    RunKind           `json:"kind"`
	Model   string            `json:"model,omitempty"`
	Group   string            `json:"group,omitempty"`
	Columns []string          `json:"columns"`
	Colors  map[string]string `json:"colors,omitempty"`
	Records []AlignedRecord   `json:"records"`
	Gaps    []*float64        `json:"reconciliation_gaps,omitempty"`
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}

// decodeOrdered walks a JSON object or array token by token, so object keys
// are visited in document order.
func decodeOrdered(data []byte, onKey func(string, *json.Decoder) error, onElem func(*json.Decoder) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	delim, ok := tok.(json.Delim)
	if !ok || (delim != '{' && delim != '[') {
		return fmt.Errorf("expected JSON object or array, got %v", tok)
	}

	for dec.More() {
		if delim == '[' {
			if err := onElem(dec); err != nil {
				return err
			}
			continue
		}
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		if err := onKey(keyTok.(string), dec); err != nil {
			return err
		}
	}

	_, err = dec.Token()
	return err
}
