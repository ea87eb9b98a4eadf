// SPDX-FileCopyrightText: 2025 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package context

const (
	MaxValueOfMmeUeS1apId int64 = 4294967295

	// MaxNumOfPdnConnections is the per-subscriber PDN connection
	// table capacity (3GPP TS 24.301 multiple PDN support).
	MaxNumOfPdnConnections int = 3

	// EsmDataIPAddressSize bounds the network allocated PDN address
	// stored per connection: 4 octets of IPv4 plus 8 octets of IPv6
	// interface identifier (TS 24.301 PDN address IE).
	EsmDataIPAddressSize int = 12
)

// PdnSlotFree marks an unoccupied PDN connection slot.
const PdnSlotFree int = -1

// PdnType is the PDN type value carried in the PDN CONNECTIVITY
// REQUEST (TS 24.301, section 9.9.4.10).
type PdnType uint8

const (
	PdnTypeIPv4 PdnType = iota + 1
	PdnTypeIPv6
	PdnTypeIPv4v6
)

func (t PdnType) String() string {
	switch t {
	case PdnTypeIPv4:
		return "IPv4"
	case PdnTypeIPv6:
		return "IPv6"
	case PdnTypeIPv4v6:
		return "IPv4v6"
	default:
		return "unknown"
	}
}
