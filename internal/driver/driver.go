// Package driver executes protocol commands against a bptree.Tree and
// writes search results, one line per search.
package driver

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/alexhholmes/bptree"
	"github.com/alexhholmes/bptree/internal/cache"
	"github.com/alexhholmes/bptree/internal/command"
)

// Config configures a Driver.
type Config struct {
	// CacheSize bounds the number of rendered search results kept between
	// inserts. 0 disables the cache.
	CacheSize int

	// Color highlights Null and the verbose search header.
	Color bool

	// Verbose prints "Search Key: <key>" before each point-search result.
	Verbose bool

	Logger bptree.Logger
}

// Driver owns the current tree. It is not safe for concurrent use.
type Driver struct {
	out     io.Writer
	tree    *bptree.Tree
	cache   *cache.Cache
	logger  bptree.Logger
	verbose bool

	null   *color.Color
	header *color.Color
}

// New creates a driver writing to out, starting with a tree of
// bptree.DefaultOrder.
func New(out io.Writer, cfg Config) (*Driver, error) {
	if cfg.Logger == nil {
		cfg.Logger = bptree.DiscardLogger{}
	}

	c, err := cache.New(cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("result cache: %w", err)
	}

	d := &Driver{
		out:     out,
		cache:   c,
		logger:  cfg.Logger,
		verbose: cfg.Verbose,
		null:    color.New(color.FgRed),
		header:  color.New(color.FgCyan),
	}
	if cfg.Color {
		d.null.EnableColor()
		d.header.EnableColor()
	} else {
		d.null.DisableColor()
		d.header.DisableColor()
	}

	d.reset(bptree.DefaultOrder)
	return d, nil
}

// Tree returns the current tree. An order command replaces it.
func (d *Driver) Tree() *bptree.Tree {
	return d.tree
}

// CacheStats returns the result cache statistics.
func (d *Driver) CacheStats() cache.Stats {
	return d.cache.Stats()
}

// Run parses and executes every line yielded by lines. It stops at the first
// line that fails to parse or the first write error.
func (d *Driver) Run(lines func(yield func(lineNo int, line string) bool)) error {
	var err error
	lines(func(lineNo int, line string) bool {
		var cmd command.Command
		cmd, err = command.Parse(lineNo, line)
		if err != nil {
			d.logger.Error("parse failed", "line", lineNo, "error", err)
			return false
		}
		err = d.Execute(cmd)
		return err == nil
	})
	return err
}

// Execute applies a single command.
func (d *Driver) Execute(cmd command.Command) error {
	switch cmd.Kind {
	case command.Insert:
		d.tree.Insert(cmd.Key, cmd.Value)
		d.invalidate()
		return nil

	case command.Search:
		if d.verbose {
			if _, err := d.header.Fprintln(d.out, "Search Key: "+FormatKey(cmd.Key)); err != nil {
				return err
			}
		}
		return d.search(cache.Query{Lo: cmd.Key, Hi: cmd.Key}, func() cache.Result {
			values := d.tree.Lookup(cmd.Key)
			return cache.Result{Text: FormatValues(values), Match: !values.Empty()}
		})

	case command.RangeSearch:
		return d.search(cache.Query{Lo: cmd.Key, Hi: cmd.High, Range: true}, func() cache.Result {
			pairs := d.tree.RangeLookup(cmd.Key, cmd.High)
			return cache.Result{Text: FormatPairs(pairs), Match: !pairs.Empty()}
		})

	case command.Order:
		d.reset(cmd.Order)
		return nil

	default:
		return fmt.Errorf("unknown command kind %v", cmd.Kind)
	}
}

func (d *Driver) search(q cache.Query, render func() cache.Result) error {
	result, ok := d.cache.Get(q)
	if !ok {
		result = render()
		d.cache.Put(q, result)
	}

	if !result.Match {
		_, err := fmt.Fprintln(d.out, d.null.Sprint(Null))
		return err
	}
	_, err := fmt.Fprintln(d.out, result.Text)
	return err
}

func (d *Driver) reset(order int) {
	d.tree = bptree.New(order, bptree.WithLogger(d.logger))
	d.invalidate()
	d.logger.Info("tree reset", "order", d.tree.Order())
}

func (d *Driver) invalidate() {
	if d.cache.Purge() {
		d.logger.Info("result cache purged")
	}
}
