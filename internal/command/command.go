// Package command parses the line-oriented text protocol understood by the
// driver:
//
//	Insert(<key>,<value>)
//	Search(<key>)
//	Search(<lo>,<hi>)
//	<order>
package command

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrSyntax = errors.New("malformed command")
	ErrNaN    = errors.New("key is not a number")
)

// Kind identifies a command.
type Kind int

const (
	Insert Kind = iota
	Search
	RangeSearch
	Order
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Search:
		return "search"
	case RangeSearch:
		return "range-search"
	case Order:
		return "order"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Command is one parsed protocol line. Only the fields relevant to Kind are
// set: Key and Value for Insert, Key for Search, Key and High for
// RangeSearch, Order for Order.
type Command struct {
	Kind  Kind
	Key   float64
	High  float64
	Value string
	Order int
}

// ParseError reports the input line a command failed to parse on.
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse parses a single trimmed, non-empty line. lineNo is only used for
// error reporting.
func Parse(lineNo int, line string) (Command, error) {
	cmd, err := parse(strings.TrimSpace(line))
	if err != nil {
		return Command{}, &ParseError{Line: lineNo, Text: line, Err: err}
	}
	return cmd, nil
}

func parse(line string) (Command, error) {
	switch {
	case strings.HasPrefix(line, "Insert"):
		args, err := arguments(line, "Insert")
		if err != nil {
			return Command{}, err
		}
		if len(args) != 2 {
			return Command{}, fmt.Errorf("insert takes 2 arguments, got %d: %w", len(args), ErrSyntax)
		}
		key, err := parseKey(args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: Insert, Key: key, Value: args[1]}, nil

	case strings.HasPrefix(line, "Search"):
		args, err := arguments(line, "Search")
		if err != nil {
			return Command{}, err
		}
		switch len(args) {
		case 1:
			key, err := parseKey(args[0])
			if err != nil {
				return Command{}, err
			}
			return Command{Kind: Search, Key: key}, nil
		case 2:
			lo, err := parseKey(args[0])
			if err != nil {
				return Command{}, err
			}
			hi, err := parseKey(args[1])
			if err != nil {
				return Command{}, err
			}
			return Command{Kind: RangeSearch, Key: lo, High: hi}, nil
		default:
			return Command{}, fmt.Errorf("search takes 1 or 2 arguments, got %d: %w", len(args), ErrSyntax)
		}

	default:
		order, err := strconv.Atoi(line)
		if err != nil {
			return Command{}, fmt.Errorf("expected an order: %w", errors.Join(ErrSyntax, err))
		}
		return Command{Kind: Order, Order: order}, nil
	}
}

// arguments returns the trimmed comma-separated arguments of name(...).
func arguments(line, name string) ([]string, error) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, name))
	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return nil, fmt.Errorf("%s: missing parentheses: %w", name, ErrSyntax)
	}
	rest = rest[1 : len(rest)-1]

	args := strings.Split(rest, ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
		if args[i] == "" {
			return nil, fmt.Errorf("%s: empty argument %d: %w", name, i+1, ErrSyntax)
		}
	}
	return args, nil
}

func parseKey(s string) (float64, error) {
	key, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("key %q: %w", s, errors.Join(ErrSyntax, err))
	}
	if math.IsNaN(key) {
		return 0, fmt.Errorf("key %q: %w", s, ErrNaN)
	}
	return key, nil
}
