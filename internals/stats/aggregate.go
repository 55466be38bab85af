// file: internals/stats/aggregate.go
package stats

import (
	"math"
	"sort"
)

// =========================================================
// DISTRIBUTION — counts per status for overview cards
// =========================================================

type Distribution struct {
	Counts map[string]int64
	Total  int64
}

// NewDistribution builds a distribution from (key,count) rows, the shape a
// GROUP BY status query returns. Total is always the sum of the counts.
func NewDistribution(rows map[string]int64) Distribution {
	d := Distribution{Counts: make(map[string]int64, len(rows))}
	for k, v := range rows {
		if v < 0 {
			v = 0
		}
		d.Counts[k] = v
		d.Total += v
	}
	return d
}

// Percentages distributes 100.0 over the keys at one decimal place using
// largest-remainder, so the values always sum to exactly 100.0 for a
// non-empty distribution. Different cards rendering the same data therefore
// never disagree.
func (d Distribution) Percentages() map[string]float64 {
	out := make(map[string]float64, len(d.Counts))
	if d.Total == 0 {
		for k := range d.Counts {
			out[k] = 0
		}
		return out
	}

	// work in tenths of a percent so everything stays integral
	type share struct {
		key       string
		tenths    int64
		remainder float64
	}
	shares := make([]share, 0, len(d.Counts))
	var used int64
	for k, v := range d.Counts {
		exact := float64(v) * 1000 / float64(d.Total)
		floor := int64(math.Floor(exact))
		shares = append(shares, share{key: k, tenths: floor, remainder: exact - float64(floor)})
		used += floor
	}

	// hand out the leftover tenths to the largest remainders; ties break on
	// key so the result is deterministic
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].remainder != shares[j].remainder {
			return shares[i].remainder > shares[j].remainder
		}
		return shares[i].key < shares[j].key
	})
	for i := int64(0); i < 1000-used; i++ {
		shares[i%int64(len(shares))].tenths++
	}

	for _, s := range shares {
		out[s.key] = float64(s.tenths) / 10
	}
	return out
}

// =========================================================
// RATES
// =========================================================

// Rate returns part/total in [0,1], and 0 (never NaN) for an empty total.
func Rate(part, total int64) float64 {
	if total <= 0 {
		return 0
	}
	if part < 0 {
		part = 0
	}
	if part > total {
		part = total
	}
	return float64(part) / float64(total)
}

// Percent is Rate scaled to [0,100] at one decimal place.
func Percent(part, total int64) float64 {
	return math.Round(Rate(part, total)*1000) / 10
}

// =========================================================
// RANKINGS — top-N for at-risk students, best-selling items
// =========================================================

type Ranked struct {
	Key   string
	Value float64
}

// TopN returns the n largest entries, descending, ties broken by key.
func TopN(values map[string]float64, n int) []Ranked {
	out := make([]Ranked, 0, len(values))
	for k, v := range values {
		out = append(out, Ranked{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Key < out[j].Key
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// BottomN returns the n smallest entries, ascending, ties broken by key.
// Used for the at-risk ranking (lowest averages first).
func BottomN(values map[string]float64, n int) []Ranked {
	out := make([]Ranked, 0, len(values))
	for k, v := range values {
		out = append(out, Ranked{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value < out[j].Value
		}
		return out[i].Key < out[j].Key
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
