package metrics

import "errors"

var errInvalidDefinition = errors.New("invalid metric definition")

var errNilRegistry = errors.New("nil registry")
