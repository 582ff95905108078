// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/js2p8

package js2p8

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrExhaustedInput   = errors.New("compressed data exhausted")
	ErrInvalidRank      = errors.New("mtf rank out of range")
	ErrCorruptReference = errors.New("back-reference before start of output")
	ErrNegativeOutLen   = errors.New("output length must be non-negative")
	ErrShortImage       = errors.New("rom image too short for code header")
	ErrBadLengthField   = errors.New("stored compressed length smaller than header")
	ErrTruncatedPayload = errors.New("compressed payload extends past end of rom image")
	ErrCartDataNotFound = errors.New("_cartdat variable not found in source")
	ErrBadRegionSize    = errors.New("cart region size mismatch")
	ErrBadByteValue     = errors.New("cart data element outside byte range")
)
