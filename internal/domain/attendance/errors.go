package attendance

import "errors"

var (
	ErrReadOnlySource = errors.New("data source does not accept attendance records")
)
