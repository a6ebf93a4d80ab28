package command

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Command
	}{
		{name: "insert", line: "Insert(3,c)", want: Command{Kind: Insert, Key: 3, Value: "c"}},
		{name: "insert_spaces", line: "  Insert ( 2.5 ,  hello world )  ", want: Command{Kind: Insert, Key: 2.5, Value: "hello world"}},
		{name: "insert_negative", line: "Insert(-7,x)", want: Command{Kind: Insert, Key: -7, Value: "x"}},
		{name: "insert_exponent", line: "Insert(1e3,k)", want: Command{Kind: Insert, Key: 1000, Value: "k"}},
		{name: "insert_value_null", line: "Insert(1,Null)", want: Command{Kind: Insert, Key: 1, Value: "Null"}},
		{name: "search", line: "Search(3)", want: Command{Kind: Search, Key: 3}},
		{name: "search_fraction", line: "Search( 0.125 )", want: Command{Kind: Search, Key: 0.125}},
		{name: "range", line: "Search(1,3)", want: Command{Kind: RangeSearch, Key: 1, High: 3}},
		{name: "range_inverted", line: "Search(9, -1)", want: Command{Kind: RangeSearch, Key: 9, High: -1}},
		{name: "order", line: "4", want: Command{Kind: Order, Order: 4}},
		{name: "order_padded", line: " 12 ", want: Command{Kind: Order, Order: 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(1, tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInfiniteKeys(t *testing.T) {
	got, err := Parse(1, "Search(-Inf,+Inf)")
	require.NoError(t, err)
	assert.True(t, math.IsInf(got.Key, -1))
	assert.True(t, math.IsInf(got.High, 1))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{name: "insert_missing_value", line: "Insert(1)", want: ErrSyntax},
		{name: "insert_extra_argument", line: "Insert(1,a,b)", want: ErrSyntax},
		{name: "insert_bad_key", line: "Insert(one,a)", want: ErrSyntax},
		{name: "insert_empty_value", line: "Insert(1, )", want: ErrSyntax},
		{name: "insert_no_parens", line: "Insert 1,a", want: ErrSyntax},
		{name: "insert_nan", line: "Insert(NaN,a)", want: ErrNaN},
		{name: "search_empty", line: "Search()", want: ErrSyntax},
		{name: "search_three", line: "Search(1,2,3)", want: ErrSyntax},
		{name: "search_unclosed", line: "Search(1", want: ErrSyntax},
		{name: "range_nan", line: "Search(1,nan)", want: ErrNaN},
		{name: "order_not_integer", line: "4.5", want: ErrSyntax},
		{name: "unknown", line: "Delete(1)", want: ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(42, tt.line)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, 42, perr.Line)
			assert.Equal(t, tt.line, perr.Text)
			assert.Contains(t, err.Error(), "line 42")
		})
	}
}

func TestParseOrderKeepsStrconvError(t *testing.T) {
	_, err := Parse(1, "x")
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "insert", Insert.String())
	assert.Equal(t, "search", Search.String())
	assert.Equal(t, "range-search", RangeSearch.String())
	assert.Equal(t, "order", Order.String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}
