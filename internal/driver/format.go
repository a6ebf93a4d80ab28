package driver

import (
	"strconv"
	"strings"

	"github.com/alexhholmes/bptree"
)

// Null is printed for a search that matched nothing.
const Null = "Null"

// FormatKey renders integral keys without a fractional part and every other
// key with the shortest representation that round-trips.
func FormatKey(key float64) string {
	return strconv.FormatFloat(key, 'f', -1, 64)
}

// FormatValues renders a point-search result as comma-joined values. An
// empty set renders as the empty string; callers print Null instead.
func FormatValues(values bptree.ValueSet) string {
	return strings.Join(values, ",")
}

// FormatPairs renders a range-search result as comma-joined (key,value)
// pairs.
func FormatPairs(pairs bptree.PairSet) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('(')
		b.WriteString(FormatKey(p.Key))
		b.WriteByte(',')
		b.WriteString(p.Value)
		b.WriteByte(')')
	}
	return b.String()
}
