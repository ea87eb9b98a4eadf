// SPDX-FileCopyrightText: 2025 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"errors"
	"fmt"
)

// ErrIncorrectLength reports an IE whose declared length does not match
// the IE's structural expectation, including truncation.
var ErrIncorrectLength = errors.New("incorrect IE length")

// ErrUnsupportedVariant reports a discriminator value outside the
// defined set, such as an unknown address family.
var ErrUnsupportedVariant = errors.New("unsupported IE variant")

// ieReader is a bounds-checked read cursor over one IE body. Every
// read fails with ErrIncorrectLength instead of crossing the declared
// IE length.
type ieReader struct {
	b   []byte
	off int
}

// newIEReader caps the cursor at ieLength octets of value.
func newIEReader(ieLength uint16, value []byte) (*ieReader, error) {
	if len(value) < int(ieLength) {
		return nil, fmt.Errorf("IE value holds %d of %d declared octets: %w",
			len(value), ieLength, ErrIncorrectLength)
	}
	return &ieReader{b: value[:ieLength]}, nil
}

// remaining returns the number of unread octets.
func (r *ieReader) remaining() int {
	return len(r.b) - r.off
}

func (r *ieReader) bytes(n int) ([]byte, error) {
	if r.remaining() < n {
		return nil, fmt.Errorf("read of %d octets at offset %d exceeds IE length %d: %w",
			n, r.off, len(r.b), ErrIncorrectLength)
	}
	b := r.b[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *ieReader) uint8() (uint8, error) {
	b, err := r.bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// uint16 reads two octets in source byte order, first octet most
// significant.
func (r *ieReader) uint16() (uint16, error) {
	b, err := r.bytes(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

func (r *ieReader) uint32() (uint32, error) {
	b, err := r.bytes(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}
