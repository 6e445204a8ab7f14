package imagefile

import "errors"

// ErrWrite marks failures to encode or persist the image. The underlying
// cause is wrapped alongside it.
var ErrWrite = errors.New("imagefile: write failed")
