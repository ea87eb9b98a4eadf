// SPDX-FileCopyrightText: 2025 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package context

// PdnConnection holds the data of one established PDN connection. The
// APN and address buffers are owned by the record and never alias the
// message buffers they were decoded from.
type PdnConnection struct {
	// Procedure transaction identity of the NAS transaction that
	// requested this connection
	Pti uint8

	// Emergency bearer services indicator, fixed at creation
	IsEmergency bool

	// Access Point Name, NUL-terminated owned copy; empty when the
	// request carried no APN
	Apn []byte

	// Network allocated PDN address, truncated to
	// EsmDataIPAddressSize octets
	IPAddr    [EsmDataIPAddressSize]byte
	IPAddrLen int

	// PDN type, meaningful only when an address was stored
	PdnType PdnType
}

// ApnString returns the APN without the terminating NUL octet.
func (pdn *PdnConnection) ApnString() string {
	if len(pdn.Apn) == 0 {
		return ""
	}
	return string(pdn.Apn[:len(pdn.Apn)-1])
}

// IPAddress returns the stored PDN address octets.
func (pdn *PdnConnection) IPAddress() []byte {
	return pdn.IPAddr[:pdn.IPAddrLen]
}

// PdnSlot is one entry of the per-subscriber PDN connection table.
// Pid equals the slot index while occupied and PdnSlotFree otherwise;
// Data is nil exactly when the slot is free.
type PdnSlot struct {
	Pid      int
	IsActive bool
	Data     *PdnConnection
}

// IsFree reports whether the slot holds no connection.
func (s *PdnSlot) IsFree() bool {
	return s.Data == nil
}

// EsmDataContext is the EPS session management data of one subscriber:
// a fixed capacity PDN connection table and the live connection count.
type EsmDataContext struct {
	Pdn   [MaxNumOfPdnConnections]PdnSlot
	NPdns int
}

func (esm *EsmDataContext) init() {
	for pid := range esm.Pdn {
		esm.Pdn[pid].Pid = PdnSlotFree
		esm.Pdn[pid].IsActive = false
		esm.Pdn[pid].Data = nil
	}
	esm.NPdns = 0
}

// OccupiedSlots counts the slots currently holding a connection.
func (esm *EsmDataContext) OccupiedSlots() int {
	n := 0
	for pid := range esm.Pdn {
		if !esm.Pdn[pid].IsFree() {
			n++
		}
	}
	return n
}
