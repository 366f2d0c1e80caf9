package arrangement

import "github.com/pkg/errors"

// Construction is one deep pipeline of numeric helpers; threading error
// returns through all of them would bury the geometry. Precondition
// violations panic instead, and the public API recovers the panic into an
// ordinary error.

type ConstructError error

// Panic with a ConstructError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleConstructPanicRecover(r interface{}) error {
	if r != nil {
		if constructError, ok := r.(ConstructError); ok {
			return constructError
		}
		panic(r)
	}
	return nil
}
