package fuzzer

import "errors"

// ErrInvalidConfig covers a bad mode, a malformed target IPv4
// literal, or a zero port — anything caught by Config validation.
var ErrInvalidConfig = errors.New("fuzzer: invalid config")

// ErrInvalidProtocol is returned when the raw socket's protocol
// argument is not one this implementation recognizes.
var ErrInvalidProtocol = errors.New("fuzzer: invalid protocol")

// ErrSocketOpen covers socket()/setsockopt() failure during sender
// init.
var ErrSocketOpen = errors.New("fuzzer: socket open failed")
