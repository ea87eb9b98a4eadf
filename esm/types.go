// SPDX-FileCopyrightText: 2025 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package esm

import (
	"errors"
	"fmt"

	"github.com/omec-project/mme-sm/context"
)

// PtUnassigned is the unassigned procedure transaction identity value
// (TS 24.007, section 11.2.3.1a).
const PtUnassigned uint8 = 0

// RequestType is the request type of the PDN CONNECTIVITY REQUEST
// (TS 24.301, section 9.9.4.14).
type RequestType uint8

const (
	RequestTypeInitial RequestType = iota + 1
	RequestTypeHandover
	RequestTypeEmergency
)

// Cause is the ESM cause reported back to the invoking protocol layer
// (TS 24.301, section 9.9.4.4).
type Cause uint8

const (
	CauseSuccess                         Cause = 0
	CauseInsufficientResources           Cause = 26
	CauseRequestRejectedUnspecified      Cause = 31
	CauseSingleAddressBearersOnlyAllowed Cause = 52
	CausePdnTypeIPv4OnlyAllowed          Cause = 50
	CausePdnTypeIPv6OnlyAllowed          Cause = 51
)

func (c Cause) String() string {
	switch c {
	case CauseSuccess:
		return "success"
	case CauseInsufficientResources:
		return "insufficient resources"
	case CauseRequestRejectedUnspecified:
		return "request rejected, unspecified"
	case CauseSingleAddressBearersOnlyAllowed:
		return "single address bearers only allowed"
	case CausePdnTypeIPv4OnlyAllowed:
		return "PDN type IPv4 only allowed"
	case CausePdnTypeIPv6OnlyAllowed:
		return "PDN type IPv6 only allowed"
	default:
		return fmt.Sprintf("cause %d", uint8(c))
	}
}

// CauseError carries an ESM cause across an error return.
type CauseError struct {
	Cause Cause
}

func (e *CauseError) Error() string {
	return "esm: " + e.Cause.String()
}

// CauseOf extracts the ESM cause from a procedure error. Errors that
// carry no cause map to CauseRequestRejectedUnspecified.
func CauseOf(err error) Cause {
	if err == nil {
		return CauseSuccess
	}
	var ce *CauseError
	if errors.As(err, &ce) {
		return ce.Cause
	}
	return CauseRequestRejectedUnspecified
}

// ErrNotStandalone signals that a rejected PDN connectivity request was
// part of a combined attach, so attach-level failure handling must run
// instead of forwarding a reject message.
var ErrNotStandalone = errors.New("esm: PDN connectivity request not standalone")

// ErrUnassigned signals that no valid procedure transaction could be
// recovered for a PDN connection entry.
var ErrUnassigned = errors.New("esm: procedure transaction unassigned")

// EmmNotifier is the one-way notification interface towards the EPS
// mobility management sublayer. Implementations forward the pre-encoded
// ESM message to the lower layers serving the given UE.
type EmmNotifier interface {
	NotifyUnitData(ue *context.UeContext, msg []byte) error
}
