package app

import "errors"

var errNoData = errors.New("waiting for readings")
