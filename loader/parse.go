package loader

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/katalvlaran/knapsack/model"
)

// Parse reads the text format into an exact-rational instance.
//
// Errors: ErrEmptyInput, ErrMalformed (with the 1-based line number), and
// read errors from r.
func Parse(r io.Reader) (model.RatInstance, error) {
	var (
		sc      = bufio.NewScanner(r)
		line    int
		haveCap bool
		out     model.RatInstance
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Split(text, ",")

		if !haveCap {
			// the capacity record may carry trailing fields; only the first counts
			v, err := parseRat(fields[0])
			if err != nil {
				return model.RatInstance{}, fmt.Errorf("%w: line %d: capacity %q", ErrMalformed, line, fields[0])
			}
			out.Capacity, haveCap = v, true
			continue
		}

		if len(fields) != 2 {
			return model.RatInstance{}, fmt.Errorf("%w: line %d: want weight,benefit, got %q", ErrMalformed, line, text)
		}
		w, err := parseRat(fields[0])
		if err != nil {
			return model.RatInstance{}, fmt.Errorf("%w: line %d: weight %q", ErrMalformed, line, fields[0])
		}
		b, err := parseRat(fields[1])
		if err != nil {
			return model.RatInstance{}, fmt.Errorf("%w: line %d: benefit %q", ErrMalformed, line, fields[1])
		}
		out.Items = append(out.Items, model.RatItem{Weight: w, Benefit: b})
	}
	if err := sc.Err(); err != nil {
		return model.RatInstance{}, fmt.Errorf("loader: read: %w", err)
	}
	if !haveCap {
		return model.RatInstance{}, ErrEmptyInput
	}

	return out, nil
}

// Load parses r and normalizes the result to an integer instance.
func Load(r io.Reader) (model.Instance, model.Scale, error) {
	ri, err := Parse(r)
	if err != nil {
		return model.Instance{}, model.Scale{}, err
	}

	return ri.Normalize()
}

// Format writes inst in the text format Parse reads, mapping every value
// back through scale so that Load(Format(inst, scale)) yields inst and scale
// again. Use model.UnitScale for integer instances.
func Format(w io.Writer, inst model.Instance, scale model.Scale) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n", scale.Weight(inst.Capacity).RatString())
	for _, it := range inst.Items {
		fmt.Fprintf(bw, "%s,%s\n", scale.Weight(it.Weight).RatString(), scale.Benefit(it.Benefit).RatString())
	}

	return bw.Flush()
}

// maxFieldLen bounds a numeric field; longer values cannot normalize to int64
// in practice and only make big.Rat work harder before failing.
const maxFieldLen = 64

func parseRat(s string) (*big.Rat, error) {
	s = strings.TrimSpace(s)
	// big.Rat would expand "1e999999999" into a billion-digit integer
	if len(s) > maxFieldLen || strings.ContainsAny(s, "eE") {
		return nil, ErrMalformed
	}
	v, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, ErrMalformed
	}

	return v, nil
}
