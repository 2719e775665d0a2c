package recognizer

import "github.com/pkg/errors"

// Threading contract errors up through every extend/query call would add a
// ton of complexity to the code for conditions that are always caller bugs
// (calling Init twice, asking an empty recognizer for its primitive, a
// non-positive width budget). Instead, we use panics, and the public API
// recovers to convert to an error.

type RecognizerError error

// Panic with a RecognizerError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleRecognizerPanicRecover(r interface{}) error {
	if r != nil {
		if recognizerError, ok := r.(RecognizerError); ok {
			return recognizerError
		}
		panic(r)
	}
	return nil
}
