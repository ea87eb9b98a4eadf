// SPDX-FileCopyrightText: 2025 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	gtpv2ie "github.com/wmnsk/go-gtp/gtpv2/ie"
)

func TestDecodeTmgi(t *testing.T) {
	// Service ID 0x000101, PLMN 208 93 (MCC 208, MNC 93)
	value := []byte{0x00, 0x01, 0x01, 0x02, 0xf8, 0x39}

	var tmgi Tmgi
	if err := Decode(TMGIType, 6, 0, value, &tmgi); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if tmgi.ServiceId != 0x0101 {
		t.Errorf("service id %#x, want 0x0101", tmgi.ServiceId)
	}
	want := Plmn{
		MccDigit1: 2, MccDigit2: 0, MccDigit3: 8,
		MncDigit1: 9, MncDigit2: 3, MncDigit3: 0xf,
	}
	if tmgi.Plmn != want {
		t.Errorf("PLMN %+v, want %+v", tmgi.Plmn, want)
	}
}

func TestDecodeTmgiIncorrectLength(t *testing.T) {
	var tmgi Tmgi
	for _, length := range []uint16{0, 5, 7} {
		err := Decode(TMGIType, length, 0, make([]byte, length), &tmgi)
		if !errors.Is(err, ErrIncorrectLength) {
			t.Errorf("length %d: got %v, want ErrIncorrectLength", length, err)
		}
	}
}

func TestDecodeMbmsSessionDuration(t *testing.T) {
	value := []byte{0x01, 0x02, 0x80, 0x85}

	var d MbmsSessionDuration
	if err := Decode(MBMSSessionDurationType, 4, 0, value, &d); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	// 1<<17 + 2<<9 + 0x80, the deployed bit layout kept verbatim
	if d.Seconds != 132224 {
		t.Errorf("seconds %d, want 132224", d.Seconds)
	}
	if d.Days != 5 {
		t.Errorf("days %d, want 5", d.Days)
	}

	if err := Decode(MBMSSessionDurationType, 3, 0, value[:3], &d); !errors.Is(err, ErrIncorrectLength) {
		t.Errorf("truncated duration: got %v, want ErrIncorrectLength", err)
	}
}

func TestDecodeMbmsServiceArea(t *testing.T) {
	value := []byte{2, 0x12, 0x34, 0xab, 0xcd}

	var area MbmsServiceArea
	if err := Decode(MBMSServiceAreaType, uint16(len(value)), 0, value, &area); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if area.NumServiceArea != 2 {
		t.Errorf("count %d, want 2", area.NumServiceArea)
	}
	// Source byte order preserved, first octet most significant
	if want := []uint16{0x1234, 0xabcd}; !reflect.DeepEqual(area.ServiceArea, want) {
		t.Errorf("codes %#v, want %#v", area.ServiceArea, want)
	}
}

func TestDecodeMbmsServiceAreaShortList(t *testing.T) {
	// Count claims 3 codes but only 2 are present
	value := []byte{3, 0x12, 0x34, 0xab, 0xcd}

	var area MbmsServiceArea
	err := Decode(MBMSServiceAreaType, uint16(len(value)), 0, value, &area)
	if !errors.Is(err, ErrIncorrectLength) {
		t.Errorf("got %v, want ErrIncorrectLength", err)
	}
}

func TestDecodeMbmsFlowIdentifier(t *testing.T) {
	var flow MbmsFlowIdentifier
	if err := Decode(MBMSFlowIdentifierType, 2, 0, []byte{0x00, 0x07}, &flow); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if flow.FlowId != 7 {
		t.Errorf("flow id %d, want 7", flow.FlowId)
	}

	if err := Decode(MBMSFlowIdentifierType, 1, 0, []byte{0x07}, &flow); !errors.Is(err, ErrIncorrectLength) {
		t.Errorf("short flow id: got %v, want ErrIncorrectLength", err)
	}
}

func TestDecodeMbmsIPMulticastDistribution(t *testing.T) {
	value := []byte{
		0x00, 0x00, 0x00, 0x01, // CTEID
		0x00, 192, 0, 2, 1, // IPv4 distribution address
		0x50, // IPv6 source address, explicit length 16
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0x01, // flags, HC indication set
	}

	var m MbmsIPMulticastDistribution
	if err := Decode(MBMSIPMulticastDistributionType, uint16(len(value)), 0, value, &m); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if m.CTeid != 1 {
		t.Errorf("CTEID %d, want 1", m.CTeid)
	}
	if m.DistributionAddress.Family != FamilyIPv4 {
		t.Errorf("distribution family %d, want IPv4", m.DistributionAddress.Family)
	}
	if got := m.DistributionAddress.Addr.String(); got != "192.0.2.1" {
		t.Errorf("distribution address %s, want 192.0.2.1", got)
	}
	if m.SourceAddress.Family != FamilyIPv6 {
		t.Errorf("source family %d, want IPv6", m.SourceAddress.Family)
	}
	if got := m.SourceAddress.Addr.String(); got != "::" {
		t.Errorf("source address %s, want ::", got)
	}
	if !m.HcIndication {
		t.Error("HC indication not set")
	}
}

func TestDecodeTaggedAddressVariants(t *testing.T) {
	t.Run("unsupported family", func(t *testing.T) {
		r := &ieReader{b: []byte{0xc0, 0, 0, 0, 0}}
		_, err := decodeTaggedAddress(r)
		if !errors.Is(err, ErrUnsupportedVariant) {
			t.Errorf("got %v, want ErrUnsupportedVariant", err)
		}
	})
	t.Run("IPv6 with wrong explicit length", func(t *testing.T) {
		r := &ieReader{b: append([]byte{0x45}, make([]byte, 16)...)}
		_, err := decodeTaggedAddress(r)
		if !errors.Is(err, ErrIncorrectLength) {
			t.Errorf("got %v, want ErrIncorrectLength", err)
		}
	})
	t.Run("truncated IPv4", func(t *testing.T) {
		r := &ieReader{b: []byte{0x00, 192, 0}}
		_, err := decodeTaggedAddress(r)
		if !errors.Is(err, ErrIncorrectLength) {
			t.Errorf("got %v, want ErrIncorrectLength", err)
		}
	})
}

func TestDecodeMbmsIPMulticastDistributionBadFamily(t *testing.T) {
	value := []byte{
		0x00, 0x00, 0x00, 0x01,
		0xc0, 0, 0, 0, 0, // family 3 is undefined
		0x00, 10, 0, 0, 1,
		0x00,
	}
	var m MbmsIPMulticastDistribution
	err := Decode(MBMSIPMulticastDistributionType, uint16(len(value)), 0, value, &m)
	if !errors.Is(err, ErrUnsupportedVariant) {
		t.Errorf("got %v, want ErrUnsupportedVariant", err)
	}
}

func TestDecodeAbsoluteTime(t *testing.T) {
	value := []byte{1, 2, 3, 4, 5, 6, 7, 8}

	var abs MbmsAbsoluteTimeOfDataTransfer
	if err := Decode(AbsoluteTimeOfMBMSDataTransferType, 8, 0, value, &abs); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !bytes.Equal(abs.AbsTime[:], value) {
		t.Errorf("timestamp %v, want %v", abs.AbsTime, value)
	}

	if err := Decode(AbsoluteTimeOfMBMSDataTransferType, 7, 0, value[:7], &abs); !errors.Is(err, ErrIncorrectLength) {
		t.Errorf("short timestamp: got %v, want ErrIncorrectLength", err)
	}
}

func TestDecodeMbmsFlags(t *testing.T) {
	tests := []struct {
		value byte
		msri  bool
		lmri  bool
	}{
		{0x00, false, false},
		{0x01, true, false},
		{0x02, false, true},
		{0x03, true, true},
	}
	for _, tt := range tests {
		var flags MbmsFlags
		if err := Decode(MBMSFlagsType, 1, 0, []byte{tt.value}, &flags); err != nil {
			t.Fatalf("decode %#02x failed: %v", tt.value, err)
		}
		if flags.Msri != tt.msri || flags.Lmri != tt.lmri {
			t.Errorf("flags %#02x: got (msri=%v, lmri=%v), want (%v, %v)",
				tt.value, flags.Msri, flags.Lmri, tt.msri, tt.lmri)
		}
	}

	var flags MbmsFlags
	for _, length := range []uint16{0, 2} {
		err := Decode(MBMSFlagsType, length, 0, make([]byte, length), &flags)
		if !errors.Is(err, ErrIncorrectLength) {
			t.Errorf("length %d: got %v, want ErrIncorrectLength", length, err)
		}
	}
}

func TestDecodeIEDispatch(t *testing.T) {
	i := &gtpv2ie.IE{Type: MBMSFlagsType, Length: 1, Payload: []byte{0x03}}

	var flags MbmsFlags
	if err := DecodeIE(i, &flags); err != nil {
		t.Fatalf("DecodeIE failed: %v", err)
	}
	if !flags.Msri || !flags.Lmri {
		t.Errorf("flags = %+v, want both set", flags)
	}
}

func TestReaderDeclaredLengthExceedsValue(t *testing.T) {
	if _, err := newIEReader(4, []byte{1, 2}); !errors.Is(err, ErrIncorrectLength) {
		t.Errorf("got %v, want ErrIncorrectLength", err)
	}
}

func TestReaderStopsAtDeclaredLength(t *testing.T) {
	// The reader must not see octets past the declared IE length even
	// when the buffer holds more
	r, err := newIEReader(2, []byte{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("newIEReader failed: %v", err)
	}
	if _, err := r.uint16(); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if _, err := r.uint8(); !errors.Is(err, ErrIncorrectLength) {
		t.Errorf("got %v, want ErrIncorrectLength", err)
	}
}
