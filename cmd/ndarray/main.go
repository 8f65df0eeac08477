// Package main provides the ndarray CLI for inspecting data types, promotion,
// broadcasting and stride layouts.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/born-ml/ndarray/array"
	"github.com/born-ml/ndarray/internal/dtype"
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/shape"
)

const version = "v0.1.0-dev"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, w io.Writer) error {
	if len(args) == 0 {
		usage(w)
		return nil
	}
	switch cmd, rest := args[0], args[1:]; cmd {
	case "version":
		fmt.Fprintf(w, "ndarray %s\n", version)
		return nil
	case "dtypes":
		return dtypes(w)
	case "promote":
		return promote(rest, w)
	case "broadcast":
		return broadcast(rest, w)
	case "cast":
		return cast(rest, w)
	case "resolve":
		return resolve(rest, w)
	case "policies":
		return policies(w)
	case "strides":
		return strides(rest, w)
	case "layout":
		return layout(rest, w)
	case "index":
		return index(rest, w)
	default:
		usage(w)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "ndarray - strided n-dimensional arrays for Go")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version                                 Show version")
	fmt.Fprintln(w, "  dtypes                                  List data types")
	fmt.Fprintln(w, "  promote <dtype> <dtype>...              Print the promoted data type")
	fmt.Fprintln(w, "  broadcast <shape> <shape>...            Print the broadcast shape, e.g. 8,1,6,1 7,1,5")
	fmt.Fprintln(w, "  cast <from> [<to> [casting]]            Check a cast (default: safe), or list safe casts")
	fmt.Fprintln(w, "  resolve <policy> <output> [<input>...]  Print the output data type of a policy")
	fmt.Fprintln(w, "  policies                                List output data type policies")
	fmt.Fprintln(w, "  strides <shape> [order]                 Print contiguous strides (default: row-major)")
	fmt.Fprintln(w, "  layout <shape> <strides>                Describe a stride pattern, e.g. 2,3 -3,1")
	fmt.Fprintln(w, "  index <shape> <order> <mode> <idx>      Convert a linear index to subscripts")
}

func dtypes(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCHAR\tSIZE\tALIGN\tBYTE ORDER\tKIND\tDESCRIPTION")
	for _, dt := range dtype.All() {
		order := "-"
		if dt.Size() > 1 {
			order = fmt.Sprint(dt.ByteOrder())
		}
		fmt.Fprintf(tw, "%s\t%c\t%d\t%d\t%s\t%s\t%s\n",
			dt, dt.Char(), dt.Size(), dt.Alignment(), order, dt.Kind(), dt.Description())
	}
	return tw.Flush()
}

func parseDTypes(names []string) ([]array.DataType, error) {
	out := make([]array.DataType, len(names))
	for i, n := range names {
		dt, err := array.ParseDType(n)
		if err != nil {
			return nil, err
		}
		out[i] = dt
	}
	return out, nil
}

func promote(args []string, w io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("promote: at least one data type is required")
	}
	dts, err := parseDTypes(args)
	if err != nil {
		return fmt.Errorf("promote: %w", err)
	}
	dt, err := array.Promote(dts[0], dts[1:]...)
	if err != nil {
		return fmt.Errorf("promote: %w", err)
	}
	fmt.Fprintln(w, dt)
	return nil
}

// parseShape parses a comma-separated shape; the empty string is a rank-0 shape.
func parseShape(s string) (array.Shape, error) {
	if strings.TrimSpace(s) == "" {
		return array.Shape{}, nil
	}
	parts := strings.Split(s, ",")
	sh := make(array.Shape, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid shape %q: %w", s, err)
		}
		sh[i] = n
	}
	return sh, nil
}

func broadcast(args []string, w io.Writer) error {
	shapes := make([]array.Shape, len(args))
	for i, a := range args {
		sh, err := parseShape(a)
		if err != nil {
			return fmt.Errorf("broadcast: %w", err)
		}
		shapes[i] = sh
	}
	out, err := array.BroadcastShapes(shapes...)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, []int(out))
	return nil
}

func cast(args []string, w io.Writer) error {
	if len(args) == 0 || len(args) > 3 {
		return fmt.Errorf("cast: usage: cast <from> [<to> [casting]]")
	}
	if len(args) == 1 {
		from, err := array.ParseDType(args[0])
		if err != nil {
			return fmt.Errorf("cast: %w", err)
		}
		safe := dtype.SafeCasts(from)
		names := make([]string, 0, len(safe))
		for _, dt := range safe {
			names = append(names, dt.String())
		}
		fmt.Fprintln(w, strings.Join(names, " "))
		return nil
	}
	dts, err := parseDTypes(args[:2])
	if err != nil {
		return fmt.Errorf("cast: %w", err)
	}
	casting := array.CastSafe
	if len(args) == 3 {
		if casting, err = dtype.ParseCasting(args[2]); err != nil {
			return fmt.Errorf("cast: %w", err)
		}
	}
	ok, err := array.IsAllowedCast(dts[0], dts[1], casting)
	if err != nil {
		return fmt.Errorf("cast: %w", err)
	}
	verdict := "not allowed"
	if ok {
		verdict = "allowed"
	}
	fmt.Fprintf(w, "%s -> %s (%s): %s\n", dts[0], dts[1], casting, verdict)
	return nil
}

func resolve(args []string, w io.Writer) error {
	if len(args) < 2 {
		return fmt.Errorf("resolve: usage: resolve <policy> <output> [<input>...]")
	}
	policy, err := array.ParsePolicy(args[0])
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}
	dts, err := parseDTypes(args[1:])
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}
	dt, err := array.ResolveDType(dts[1:], dts[0], policy)
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}
	fmt.Fprintln(w, dt)
	return nil
}

func policies(w io.Writer) error {
	for _, p := range dtype.Policies() {
		fmt.Fprintln(w, p)
	}
	return nil
}

// parseInts parses a comma-separated list of integers.
func parseInts(s string) ([]int, error) {
	sh, err := parseShape(s)
	return []int(sh), err
}

func strides(args []string, w io.Writer) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("strides: usage: strides <shape> [order]")
	}
	sh, err := parseShape(args[0])
	if err != nil {
		return fmt.Errorf("strides: %w", err)
	}
	if err := sh.Validate(); err != nil {
		return fmt.Errorf("strides: %w", err)
	}
	order := array.RowMajor
	if len(args) == 2 {
		if order, err = shape.ParseOrder(args[1]); err != nil {
			return fmt.Errorf("strides: %w", err)
		}
	}
	fmt.Fprintln(w, ndarray.DefaultStrides(sh, order))
	return nil
}

func layout(args []string, w io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("layout: usage: layout <shape> <strides>")
	}
	sh, err := parseShape(args[0])
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	if err := sh.Validate(); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	st, err := parseInts(args[1])
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	if len(st) != len(sh) {
		return fmt.Errorf("layout: %w: %d strides for shape %v", shape.ErrRankMismatch, len(st), []int(sh))
	}
	offset := shape.StridesToOffset(sh, st)
	lo, hi, err := shape.MinMaxViewBufferIndex(sh, st, offset)
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	direction := map[int]string{1: "forward", -1: "backward", 0: "mixed"}[shape.IterationOrder(st)]
	fmt.Fprintf(w, "order: %s\n", shape.StridesToOrder(st))
	fmt.Fprintf(w, "contiguous: %t\n", shape.IsContiguous(sh, st))
	fmt.Fprintf(w, "direction: %s\n", direction)
	fmt.Fprintf(w, "offset: %d\n", offset)
	fmt.Fprintf(w, "buffer range: [%d, %d]\n", lo, hi)
	return nil
}

func index(args []string, w io.Writer) error {
	if len(args) != 4 {
		return fmt.Errorf("index: usage: index <shape> <order> <mode> <idx>")
	}
	sh, err := parseShape(args[0])
	if err != nil {
		return fmt.Errorf("index: %w", err)
	}
	order, err := shape.ParseOrder(args[1])
	if err != nil {
		return fmt.Errorf("index: %w", err)
	}
	mode, err := shape.ParseIndexMode(args[2])
	if err != nil {
		return fmt.Errorf("index: %w", err)
	}
	idx, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("index: %w", err)
	}
	subs, err := shape.Ind2Sub(sh, order, idx, mode)
	if err != nil {
		return fmt.Errorf("index: %w", err)
	}
	fmt.Fprintln(w, subs)
	return nil
}
