package stream

import "errors"

// ErrIndexOutOfRange is returned by positional writes outside the collection.
var ErrIndexOutOfRange = errors.New("stream: index out of range")
