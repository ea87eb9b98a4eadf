// SPDX-FileCopyrightText: 2025 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

// Package message decodes the GTPv2C information elements carried on
// the Sm interface for MBMS session management (TS 29.274). Each
// decoder is a pure function over the IE body: it populates exactly one
// typed record and never reads past the declared IE length.
package message

import (
	"encoding/binary"
	"fmt"
	"net"

	gtpv2ie "github.com/wmnsk/go-gtp/gtpv2/ie"
)

// Record is an IE output record that knows how to populate itself from
// an IE body.
type Record interface {
	decodeIE(ieType uint8, ieLength uint16, ieInstance uint8, value []byte) error
}

// Decode populates rec from one IE described by its type, declared
// length and instance. value must hold at least ieLength octets; on any
// error the record must not be trusted.
func Decode(ieType uint8, ieLength uint16, ieInstance uint8, value []byte, rec Record) error {
	return rec.decodeIE(ieType, ieLength, ieInstance, value)
}

// DecodeIE populates rec from an IE parsed by the underlying GTPv2
// message parsing library.
func DecodeIE(i *gtpv2ie.IE, rec Record) error {
	return Decode(i.Type, i.Length, i.Instance(), i.Payload, rec)
}

func (t *Tmgi) decodeIE(ieType uint8, ieLength uint16, ieInstance uint8, value []byte) error {
	if ieLength != MbmsServiceIDOctets+3 {
		return fmt.Errorf("TMGI length %d: %w", ieLength, ErrIncorrectLength)
	}
	r, err := newIEReader(ieLength, value)
	if err != nil {
		return err
	}

	// MBMS service ID, most significant octet first
	serviceId := uint32(0)
	for i := 0; i < MbmsServiceIDOctets; i++ {
		b, err := r.uint8()
		if err != nil {
			return err
		}
		serviceId = serviceId<<8 + uint32(b)
	}
	t.ServiceId = serviceId

	plmn, err := r.bytes(3)
	if err != nil {
		return err
	}
	// PLMN identity in TBCD, swapped nibble layout per TS 29.274
	t.Plmn.MccDigit2 = plmn[0] >> 4
	t.Plmn.MccDigit1 = plmn[0] & 0x0f
	t.Plmn.MncDigit3 = plmn[1] >> 4
	t.Plmn.MccDigit3 = plmn[1] & 0x0f
	t.Plmn.MncDigit2 = plmn[2] >> 4
	t.Plmn.MncDigit1 = plmn[2] & 0x0f
	return nil
}

func (d *MbmsSessionDuration) decodeIE(ieType uint8, ieLength uint16, ieInstance uint8, value []byte) error {
	r, err := newIEReader(ieLength, value)
	if err != nil {
		return err
	}
	b, err := r.bytes(4)
	if err != nil {
		return err
	}
	// Non-contiguous bit layout, kept bit-for-bit as deployed
	d.Seconds = uint32(b[0])<<17 + uint32(b[1])<<9 + uint32(b[2]&0x80)
	d.Days = b[3] & 0x7F
	return nil
}

func (a *MbmsServiceArea) decodeIE(ieType uint8, ieLength uint16, ieInstance uint8, value []byte) error {
	r, err := newIEReader(ieLength, value)
	if err != nil {
		return err
	}
	num, err := r.uint8()
	if err != nil {
		return err
	}
	codes := make([]uint16, 0, num)
	for i := 0; i < int(num); i++ {
		sac, err := r.uint16()
		if err != nil {
			return err
		}
		codes = append(codes, sac)
	}
	a.NumServiceArea = num
	a.ServiceArea = codes
	return nil
}

func (f *MbmsFlowIdentifier) decodeIE(ieType uint8, ieLength uint16, ieInstance uint8, value []byte) error {
	r, err := newIEReader(ieLength, value)
	if err != nil {
		return err
	}
	flowId, err := r.uint16()
	if err != nil {
		return err
	}
	f.FlowId = flowId
	return nil
}

func (m *MbmsIPMulticastDistribution) decodeIE(ieType uint8, ieLength uint16, ieInstance uint8, value []byte) error {
	r, err := newIEReader(ieLength, value)
	if err != nil {
		return err
	}

	cteid, err := r.uint32()
	if err != nil {
		return err
	}

	distribution, err := decodeTaggedAddress(r)
	if err != nil {
		return fmt.Errorf("multicast distribution address: %w", err)
	}
	source, err := decodeTaggedAddress(r)
	if err != nil {
		return fmt.Errorf("multicast source address: %w", err)
	}

	flags, err := r.uint8()
	if err != nil {
		return err
	}

	m.CTeid = cteid
	m.DistributionAddress = distribution
	m.SourceAddress = source
	m.HcIndication = flags&0x01 != 0
	return nil
}

// decodeTaggedAddress consumes one descriptor octet (2 bits address
// family, 6 bits explicit length) followed by the address octets.
func decodeTaggedAddress(r *ieReader) (TaggedAddress, error) {
	desc, err := r.uint8()
	if err != nil {
		return TaggedAddress{}, err
	}
	family := AddressFamily(desc >> 6)
	length := int(desc & 0x3F)

	switch family {
	case FamilyIPv4:
		b, err := r.bytes(net.IPv4len)
		if err != nil {
			return TaggedAddress{}, err
		}
		// Reassemble the host value, store in network order
		hbo := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
		addr := make(net.IP, net.IPv4len)
		binary.BigEndian.PutUint32(addr, hbo)
		return TaggedAddress{Family: family, Addr: addr}, nil
	case FamilyIPv6:
		if length != net.IPv6len {
			return TaggedAddress{}, fmt.Errorf("IPv6 address with explicit length %d: %w",
				length, ErrIncorrectLength)
		}
		b, err := r.bytes(net.IPv6len)
		if err != nil {
			return TaggedAddress{}, err
		}
		addr := make(net.IP, net.IPv6len)
		copy(addr, b)
		return TaggedAddress{Family: family, Addr: addr}, nil
	default:
		return TaggedAddress{}, fmt.Errorf("address family %d: %w", family, ErrUnsupportedVariant)
	}
}

func (t *MbmsAbsoluteTimeOfDataTransfer) decodeIE(ieType uint8, ieLength uint16, ieInstance uint8, value []byte) error {
	r, err := newIEReader(ieLength, value)
	if err != nil {
		return err
	}
	b, err := r.bytes(len(t.AbsTime))
	if err != nil {
		return err
	}
	copy(t.AbsTime[:], b)
	return nil
}

func (f *MbmsFlags) decodeIE(ieType uint8, ieLength uint16, ieInstance uint8, value []byte) error {
	if ieLength != 1 {
		return fmt.Errorf("MBMS flags length %d: %w", ieLength, ErrIncorrectLength)
	}
	r, err := newIEReader(ieLength, value)
	if err != nil {
		return err
	}
	flags, err := r.uint8()
	if err != nil {
		return err
	}
	f.Msri = flags&0x01 != 0
	f.Lmri = flags&0x02 != 0
	return nil
}
