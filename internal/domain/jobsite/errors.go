package jobsite

import "errors"

var (
	ErrNotFound = errors.New("job site not found")
)
