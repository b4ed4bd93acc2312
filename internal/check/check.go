// Package check sweeps small integer intervals and verifies that the
// arithmetic answers of pkg/interval agree with brute-force enumeration.
package check

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/leapstack-labs/leaprange/pkg/domain"
	"github.com/leapstack-labs/leaprange/pkg/enumerable"
	"github.com/leapstack-labs/leaprange/pkg/interval"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxBound is used when Runner.MaxBound is not positive.
const DefaultMaxBound = 6

// Properties lists every property the sweep verifies.
var Properties = []string{
	"max",
	"min",
	"first_n",
	"last_n",
	"overlap_symmetry",
	"overlap_empty",
	"overlap_elements",
}

// Group returns the operation family a property belongs to.
func Group(property string) string {
	switch property {
	case "max", "min":
		return "extremum"
	case "first_n", "last_n":
		return "accessor"
	default:
		return "overlap"
	}
}

// Failure is one violated property.
type Failure struct {
	Interval string `json:"range" yaml:"range"`
	Property string `json:"property" yaml:"property"`
	Detail   string `json:"detail" yaml:"detail"`
}

// Report summarizes a sweep.
type Report struct {
	Bound    int       `json:"bound" yaml:"bound"`
	Cases    int       `json:"cases" yaml:"cases"`
	Checks   int       `json:"checks" yaml:"checks"`
	Failures []Failure `json:"failures" yaml:"failures"`
}

// OK reports whether every check passed.
func (r Report) OK() bool { return len(r.Failures) == 0 }

// Runner runs the sweep over every interval with endpoints in
// [-MaxBound, MaxBound], inclusive and exclusive.
type Runner struct {
	MaxBound int
	// Workers caps concurrent goroutines. Zero means GOMAXPROCS.
	Workers int
	Logger  *slog.Logger
}

var ints = domain.Integers[int64]()

// Run executes the sweep. It returns early with ctx's error when ctx is
// cancelled.
func (r Runner) Run(ctx context.Context) (Report, error) {
	bound := r.MaxBound
	if bound <= 0 {
		bound = DefaultMaxBound
	}
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	all, err := sweep(int64(bound))
	if err != nil {
		return Report{}, err
	}
	logger.Debug("starting property sweep", "bound", bound, "intervals", len(all), "workers", workers)

	var (
		mu     sync.Mutex
		report = Report{Bound: bound, Cases: len(all), Failures: []Failure{}}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := -int64(bound); start <= int64(bound); start++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var local shard
			for _, c := range all {
				if c.start != start {
					continue
				}
				local.single(c)
				for _, other := range all {
					local.pair(c, other)
				}
			}

			mu.Lock()
			report.Checks += local.checks
			report.Failures = append(report.Failures, local.failures...)
			mu.Unlock()
			logger.Debug("swept start value", "start", start, "checks", local.checks, "failures", len(local.failures))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	slices.SortFunc(report.Failures, func(a, b Failure) int {
		return cmp.Or(strings.Compare(a.Interval, b.Interval), strings.Compare(a.Property, b.Property))
	})
	logger.Info("property sweep finished", "cases", report.Cases, "checks", report.Checks, "failures", len(report.Failures))
	return report, nil
}

type sample struct {
	iv    interval.Interval[int64]
	start int64
	elems []int64
}

func sweep(bound int64) ([]sample, error) {
	var out []sample
	for s := -bound; s <= bound; s++ {
		for e := -bound; e <= bound; e++ {
			for _, exclusive := range []bool{false, true} {
				b := enumerable.Bounds[int64]{Start: s, End: e, HasStart: true, HasEnd: true, ExcludeEnd: exclusive, Domain: ints}
				seq, err := enumerable.Lazy[int64]{}.Ascending(b)
				if err != nil {
					return nil, err
				}
				elems := slices.Collect(seq)
				if elems == nil {
					elems = []int64{}
				}
				out = append(out, sample{iv: interval.FromBounds(b), start: s, elems: elems})
			}
		}
	}
	return out, nil
}

type shard struct {
	checks   int
	failures []Failure
}

func (s *shard) expect(ok bool, iv interval.Interval[int64], property, format string, args ...any) {
	s.checks++
	if !ok {
		s.failures = append(s.failures, Failure{Interval: iv.String(), Property: property, Detail: fmt.Sprintf(format, args...)})
	}
}

// single checks the per-interval properties.
func (s *shard) single(c sample) {
	iv, elems := c.iv, c.elems

	brute := enumerable.Lazy[int64]{}
	for _, p := range []enumerable.Pick{enumerable.PickMax, enumerable.PickMin} {
		want, wantOK, _ := brute.Extremal(slices.Values(elems), ints.Compare, p)
		var (
			got   int64
			gotOK bool
			err   error
		)
		if p == enumerable.PickMax {
			got, gotOK, err = iv.Max(nil)
		} else {
			got, gotOK, err = iv.Min(nil)
		}
		s.expect(err == nil && got == want && gotOK == wantOK, iv, p.String(),
			"fast path gave (%d, %v, %v), enumeration gave (%d, %v)", got, gotOK, err, want, wantOK)
	}

	for n := 0; n <= len(elems)+1; n++ {
		first, err := iv.FirstN(n)
		want := elems[:min(n, len(elems))]
		s.expect(err == nil && slices.Equal(first, want), iv, "first_n",
			"FirstN(%d) = %v, %v; want %v", n, first, err, want)

		last, err := iv.LastN(n)
		tail := elems[len(elems)-min(n, len(elems)):]
		s.expect(err == nil && slices.Equal(last, tail), iv, "last_n",
			"LastN(%d) = %v, %v; want %v", n, last, err, tail)
	}
}

// pair checks the properties of overlap between a and b.
func (s *shard) pair(a, b sample) {
	got := a.iv.Overlaps(b.iv)
	s.expect(got == b.iv.Overlaps(a.iv), a.iv, "overlap_symmetry",
		"Overlaps(%s) = %v but the reverse is %v", b.iv, got, !got)

	if a.iv.IsEmpty() || b.iv.IsEmpty() {
		s.expect(!got, a.iv, "overlap_empty", "degenerate interval overlaps %s", b.iv)
		return
	}

	shared := slices.ContainsFunc(a.elems, func(v int64) bool { return slices.Contains(b.elems, v) })
	s.expect(got == shared, a.iv, "overlap_elements",
		"Overlaps(%s) = %v, shared element: %v", b.iv, got, shared)
}
