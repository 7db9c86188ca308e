package bounds_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orbitals/bounds"
)

// TestNewVar_EmptyDomain verifies that an inverted interval is rejected.
func TestNewVar_EmptyDomain(t *testing.T) {
	s := bounds.NewStore()

	_, err := s.NewVar("x", 1, 0)
	assert.ErrorIs(t, err, bounds.ErrEmptyDomain)

	// Within Feastol is fine.
	_, err = s.NewVar("y", 1, 1)
	assert.NoError(t, err)
}

// TestTighten_Basics verifies no-op, success and infeasibility outcomes.
func TestTighten_Basics(t *testing.T) {
	s := bounds.NewStore()
	x, err := s.NewVar("x", 0, 5)
	require.NoError(t, err)

	// Not strictly tighter: no-op.
	tightened, err := s.TightenLb(x, 0)
	require.NoError(t, err)
	assert.False(t, tightened)

	// Proper tightening.
	tightened, err = s.TightenLb(x, 2)
	require.NoError(t, err)
	assert.True(t, tightened)
	assert.Equal(t, 2.0, x.Lb())

	tightened, err = s.TightenUb(x, 3)
	require.NoError(t, err)
	assert.True(t, tightened)
	assert.Equal(t, 3.0, x.Ub())

	// Emptying the interval signals infeasibility and leaves bounds alone.
	_, err = s.TightenLb(x, 4)
	assert.ErrorIs(t, err, bounds.ErrInfeasible)
	assert.Equal(t, 2.0, x.Lb())

	_, err = s.TightenUb(x, 1)
	assert.ErrorIs(t, err, bounds.ErrInfeasible)
	assert.Equal(t, 3.0, x.Ub())
}

// TestTighten_Infinite verifies tightening away from infinite bounds.
func TestTighten_Infinite(t *testing.T) {
	s := bounds.NewStore()
	x, err := s.NewVar("x", math.Inf(-1), math.Inf(1))
	require.NoError(t, err)

	tightened, err := s.TightenLb(x, -10)
	require.NoError(t, err)
	assert.True(t, tightened)

	tightened, err = s.TightenUb(x, 10)
	require.NoError(t, err)
	assert.True(t, tightened)
	assert.Equal(t, -10.0, x.Lb())
	assert.Equal(t, 10.0, x.Ub())
}

// TestSubscribe_EventsAndCancel verifies handler delivery and idempotent Cancel.
func TestSubscribe_EventsAndCancel(t *testing.T) {
	s := bounds.NewStore()
	x, err := s.NewVar("x", 0, 5)
	require.NoError(t, err)

	var events []bounds.Event
	sub := s.Subscribe(x, func(ev bounds.Event) { events = append(events, ev) })

	_, err = s.TightenLb(x, 1)
	require.NoError(t, err)
	_, err = s.TightenUb(x, 4)
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, bounds.Lower, events[0].Type)
	assert.Equal(t, 0.0, events[0].Old)
	assert.Equal(t, 1.0, events[0].New)
	assert.Equal(t, bounds.Upper, events[1].Type)
	assert.Equal(t, 4.0, events[1].New)

	// After Cancel no further events arrive; double Cancel is harmless.
	sub.Cancel()
	sub.Cancel()
	_, err = s.TightenLb(x, 2)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

// TestFeastolComparisons spot-checks the tolerance helpers.
func TestFeastolComparisons(t *testing.T) {
	assert.True(t, bounds.Eq(1.0, 1.0+bounds.Feastol/2))
	assert.False(t, bounds.Eq(1.0, 1.0+10*bounds.Feastol))
	assert.True(t, bounds.Eq(math.Inf(1), math.Inf(1)))
	assert.True(t, bounds.Gt(math.Inf(1), 1e100))
	assert.True(t, bounds.Lt(math.Inf(-1), -1e100))
	assert.True(t, bounds.Le(2.0, 2.0))
	assert.True(t, bounds.Ge(2.0, 2.0))
}
