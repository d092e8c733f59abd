package domain

import "errors"

// ErrSizeOutOfRange is returned when a ring size falls outside [1, MaxSize].
var ErrSizeOutOfRange = errors.New("size out of range")

// ErrValueOverflow is returned when an initial value has bits set at or beyond the ring size.
var ErrValueOverflow = errors.New("value has bits beyond ring size")

// ErrInvalidRange is returned when a range of sizes is empty or reversed.
var ErrInvalidRange = errors.New("invalid size range")
