package errs

// Categories used to map failures onto transport responses.
// Use Mark to attach one to a concrete error and Is to test for it.
var (
	ErrValidation = New("validation error")
	ErrConflict   = New("conflict")
	ErrNotFound   = New("not found")
	ErrForbidden  = New("forbidden")
	ErrInternal   = New("internal error")
)

func Validation(err error) error { return Mark(err, ErrValidation) }
func Conflict(err error) error   { return Mark(err, ErrConflict) }
func NotFound(err error) error   { return Mark(err, ErrNotFound) }
func Forbidden(err error) error  { return Mark(err, ErrForbidden) }
func Internal(err error) error   { return Mark(err, ErrInternal) }

// Category returns the first category marker carried by err, or ErrInternal.
func Category(err error) error {
	for _, c := range []error{ErrValidation, ErrConflict, ErrNotFound, ErrForbidden} {
		if Is(err, c) {
			return c
		}
	}
	return ErrInternal
}
