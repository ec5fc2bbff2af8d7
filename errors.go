package img2css

import "errors"

// ErrInvalidInput reports input that violates a structural requirement:
// a grid with no rows, an empty row, a ragged (non-rectangular) grid,
// compressed rows that disagree on total width, or an unusable container
// name or label alphabet. Errors returned by this package wrap it with
// the specifics; callers test with errors.Is.
var ErrInvalidInput = errors.New("invalid input")
