package source

import "errors"

var errUnsupportedDriver = errors.New("unsupported source driver")
