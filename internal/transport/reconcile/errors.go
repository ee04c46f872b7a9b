package reconcile

import "errors"

var (
	ErrNoPending = errors.New("no pending materializations")
)
