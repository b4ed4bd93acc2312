package check_test

import (
	"context"
	"testing"

	"github.com/leapstack-labs/leaprange/internal/check"
	"github.com/leapstack-labs/leaprange/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Run(t *testing.T) {
	r := check.Runner{MaxBound: 3, Workers: 2, Logger: testutil.NewTestLogger(t)}

	report, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, report.OK(), "failures: %v", report.Failures)
	assert.Equal(t, 3, report.Bound)
	assert.Equal(t, 7*7*2, report.Cases)
	assert.Greater(t, report.Checks, report.Cases*report.Cases)
	assert.NotNil(t, report.Failures)
}

func TestRunner_Defaults(t *testing.T) {
	report, err := check.Runner{}.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, check.DefaultMaxBound, report.Bound)
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := check.Runner{MaxBound: 2, Workers: 1}.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReport_OK(t *testing.T) {
	assert.True(t, check.Report{}.OK())
	assert.False(t, check.Report{Failures: []check.Failure{{Interval: "1..2", Property: "max"}}}.OK())
}

func TestGroup(t *testing.T) {
	groups := map[string]int{}
	for _, p := range check.Properties {
		groups[check.Group(p)]++
	}
	assert.Equal(t, map[string]int{"extremum": 2, "accessor": 2, "overlap": 3}, groups)
}
