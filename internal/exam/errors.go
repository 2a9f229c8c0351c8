package exam

import "fmt"

// DataError indicates the input data cannot be analyzed at all: an empty
// examinee or question set, ragged rows, or a key with no scoreable
// questions. It aborts the whole analysis; there is nothing to retry.
type DataError struct {
	Reason string
}

func (e *DataError) Error() string {
	return "invalid exam data: " + e.Reason
}

func dataErrorf(format string, args ...any) error {
	return &DataError{Reason: fmt.Sprintf(format, args...)}
}
