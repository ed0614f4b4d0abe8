package transaction

import "errors"

var (
	ErrReadOnlySource = errors.New("data source does not accept transaction records")
)
