package bounds

import "errors"

// ErrInfeasible indicates a tightening that would empty a variable's interval.
var ErrInfeasible = errors.New("bounds: tightening empties variable domain")

// ErrEmptyDomain indicates a variable created with lb > ub.
var ErrEmptyDomain = errors.New("bounds: lower bound exceeds upper bound")

// BoundType selects which side of a variable's interval an update concerns.
type BoundType uint8

const (
	// Lower marks a lower-bound change.
	Lower BoundType = iota
	// Upper marks an upper-bound change.
	Upper
)

// String returns "lower" or "upper".
func (bt BoundType) String() string {
	if bt == Lower {
		return "lower"
	}

	return "upper"
}

// Event describes one bound change of one variable.
type Event struct {
	Var  *Var      // the changed variable
	Type BoundType // which bound moved
	Old  float64   // value before the change
	New  float64   // value after the change
}

// Handler consumes bound-change events. Handlers run synchronously on the
// tightening caller's stack and must not mutate the Store.
type Handler func(Event)

// Subscription is a cancellable registration of a Handler on one variable.
type Subscription struct {
	v  *Var
	id int
}

// Cancel removes the handler. Cancelling twice is a no-op.
func (s *Subscription) Cancel() {
	if s.v == nil {
		return
	}
	delete(s.v.handlers, s.id)
	s.v = nil
}

// Var is a problem variable with current local bounds. Vars are created by
// a Store and mutated only through it.
type Var struct {
	name     string
	lb, ub   float64
	handlers map[int]Handler
	nextID   int
}

// Name returns the variable's name.
func (v *Var) Name() string { return v.name }

// Lb returns the current lower bound.
func (v *Var) Lb() float64 { return v.lb }

// Ub returns the current upper bound.
func (v *Var) Ub() float64 { return v.ub }

// Store owns a set of variables and is the single mutation authority for
// their bounds.
type Store struct {
	vars []*Var
}

// NewStore creates an empty Store.
func NewStore() *Store { return &Store{} }

// NewVar adds a variable with the given name and initial bounds.
// Returns ErrEmptyDomain if lb exceeds ub by more than Feastol.
func (s *Store) NewVar(name string, lb, ub float64) (*Var, error) {
	if Gt(lb, ub) {
		return nil, ErrEmptyDomain
	}

	v := &Var{
		name:     name,
		lb:       lb,
		ub:       ub,
		handlers: make(map[int]Handler),
	}
	s.vars = append(s.vars, v)

	return v, nil
}

// Vars returns the variables in creation order. The slice is shared; do not modify.
func (s *Store) Vars() []*Var { return s.vars }

// TightenLb raises v's lower bound to b.
//
// Returns (false, nil) when b is not strictly above the current lower bound
// (within Feastol), (false, ErrInfeasible) when b lies above the upper
// bound, and (true, nil) after a successful change. Successful changes are
// delivered to every subscribed handler before TightenLb returns.
func (s *Store) TightenLb(v *Var, b float64) (bool, error) {
	if !Gt(b, v.lb) {
		return false, nil
	}
	if Gt(b, v.ub) {
		return false, ErrInfeasible
	}

	old := v.lb
	v.lb = b
	v.fire(Event{Var: v, Type: Lower, Old: old, New: b})

	return true, nil
}

// TightenUb lowers v's upper bound to b, with the same contract as TightenLb
// mirrored to the upper side.
func (s *Store) TightenUb(v *Var, b float64) (bool, error) {
	if !Lt(b, v.ub) {
		return false, nil
	}
	if Lt(b, v.lb) {
		return false, ErrInfeasible
	}

	old := v.ub
	v.ub = b
	v.fire(Event{Var: v, Type: Upper, Old: old, New: b})

	return true, nil
}

// Subscribe registers h for every bound change of v until the returned
// Subscription is cancelled.
func (s *Store) Subscribe(v *Var, h Handler) *Subscription {
	id := v.nextID
	v.nextID++
	v.handlers[id] = h

	return &Subscription{v: v, id: id}
}

// fire delivers ev to the variable's handlers. Delivery order follows
// registration order so replayed caches stay deterministic.
func (v *Var) fire(ev Event) {
	for id := 0; id < v.nextID; id++ {
		if h, ok := v.handlers[id]; ok {
			h(ev)
		}
	}
}
