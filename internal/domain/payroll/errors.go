package payroll

import "errors"

var (
	ErrDataNotLoaded = errors.New("payroll data has not been loaded yet")
)
