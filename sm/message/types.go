// SPDX-FileCopyrightText: 2025 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"net"
)

// GTPv2C information element types used on the Sm interface
// (TS 29.274, section 8.1)
const (
	MBMSSessionDurationType            uint8 = 138
	MBMSServiceAreaType                uint8 = 139
	MBMSFlowIdentifierType             uint8 = 141
	MBMSIPMulticastDistributionType    uint8 = 142
	TMGIType                           uint8 = 158
	AbsoluteTimeOfMBMSDataTransferType uint8 = 164
	MBMSFlagsType                      uint8 = 171
)

// MbmsServiceIDOctets is the number of octets of the MBMS service
// identifier inside the TMGI (TS 23.003, section 15.2).
const MbmsServiceIDOctets = 3

// Plmn is a PLMN identity split into its MCC and MNC digits.
type Plmn struct {
	MccDigit1 uint8
	MccDigit2 uint8
	MccDigit3 uint8
	MncDigit1 uint8
	MncDigit2 uint8
	MncDigit3 uint8
}

// Tmgi is the Temporary Mobile Group Identity of an MBMS bearer
// service.
type Tmgi struct {
	ServiceId uint32
	Plmn      Plmn
}

// MbmsSessionDuration is the remaining lifetime of an MBMS session.
type MbmsSessionDuration struct {
	Seconds uint32
	Days    uint8
}

// MbmsServiceArea lists the service area codes an MBMS session is
// distributed to.
type MbmsServiceArea struct {
	NumServiceArea uint8
	ServiceArea    []uint16
}

// MbmsFlowIdentifier distinguishes flows of a location dependent MBMS
// service.
type MbmsFlowIdentifier struct {
	FlowId uint16
}

// AddressFamily is the 2-bit address type discriminator of a tagged
// address inside the MBMS IP multicast distribution IE.
type AddressFamily uint8

const (
	FamilyIPv4 AddressFamily = 0
	FamilyIPv6 AddressFamily = 1
)

// TaggedAddress is one family-tagged address of the MBMS IP multicast
// distribution IE. Addr is in network byte order.
type TaggedAddress struct {
	Family AddressFamily
	Addr   net.IP
}

// MbmsIPMulticastDistribution carries the common tunnel endpoint and
// the multicast distribution and source addresses of an MBMS session.
type MbmsIPMulticastDistribution struct {
	CTeid               uint32
	DistributionAddress TaggedAddress
	SourceAddress       TaggedAddress

	// MBMS HC indication, bit 0 of the trailing flags octet
	HcIndication bool
}

// MbmsAbsoluteTimeOfDataTransfer is the opaque 8-octet timestamp at
// which the MBMS data transfer starts; interpretation is left to the
// caller.
type MbmsAbsoluteTimeOfDataTransfer struct {
	AbsTime [8]byte
}

// MbmsFlags are the MBMS bearer flags (TS 29.274, section 8.70).
type MbmsFlags struct {
	Msri bool
	Lmri bool
}
