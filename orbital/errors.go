package orbital

import "errors"

var (
	// ErrNilStore indicates that NewRegistry received a nil bound store.
	ErrNilStore = errors.New("orbital: bound store must not be nil")
	// ErrNilTree indicates that NewRegistry received a nil shadow tree.
	ErrNilTree = errors.New("orbital: shadow tree must not be nil")
	// ErrNoVars indicates a component registered without variables or permutations.
	ErrNoVars = errors.New("orbital: component needs variables and permutations")
	// ErrDuplicateVar indicates a variable appearing twice in a component's variable array.
	ErrDuplicateVar = errors.New("orbital: duplicate variable in component")
	// ErrPermSize indicates a permutation whose length differs from the component's variable count.
	ErrPermSize = errors.New("orbital: permutation length differs from variable count")
)
