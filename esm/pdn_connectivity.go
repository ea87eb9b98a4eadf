// SPDX-FileCopyrightText: 2025 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

// Package esm implements the PDN connectivity procedure executed by
// the MME (TS 24.301, section 6.5.1).
//
// The procedure is used either to establish the first default bearer
// by including the PDN CONNECTIVITY REQUEST message in the initial
// attach message, or to establish subsequent default bearers to
// additional PDNs with the message sent stand-alone.
package esm

import (
	"errors"

	"github.com/omec-project/mme-sm/context"
	"github.com/omec-project/mme-sm/logger"
)

// Procedure drives the PDN connectivity procedure for one subscriber
// context at a time. All entry points on one UE context must be
// serialized by the caller.
type Procedure struct {
	notifier EmmNotifier
	policy   CapabilityPolicy
}

// NewProcedure builds a procedure with the given EMM notification sink
// and capability policy. A nil policy permits every PDN type.
func NewProcedure(notifier EmmNotifier, policy CapabilityPolicy) *Procedure {
	if policy == nil {
		policy = PermitAllPolicy{}
	}
	return &Procedure{notifier: notifier, policy: policy}
}

// PdnConnectivityRequest performs the PDN connectivity procedure
// requested by the UE (TS 24.301, section 6.5.1.3).
//
// It checks the requested PDN type against the network IP capabilities
// and creates a new PDN connection entry. The returned cause is
// meaningful even on success: the network may accept the request with a
// downgrade cause such as "single address bearers only allowed".
func (p *Procedure) PdnConnectivityRequest(
	ue *context.UeContext, pti uint8, requestType RequestType,
	apn []byte, pdnType context.PdnType, pdnAddr []byte,
) (int, Cause, error) {
	logger.EsmLog.Infof("PDN connectivity requested by the UE (ueId=%d, pti=%d) PDN type=%s APN=%q",
		ue.MmeUeS1apId, pti, pdnType, apn)

	cause, ok := p.policy.CheckPdnType(pdnType)
	if !ok {
		logger.EsmLog.Warnf("requested PDN type %s not supported by the network: %s", pdnType, cause)
		return -1, cause, &CauseError{Cause: cause}
	}

	isEmergency := requestType == RequestTypeEmergency

	pid := pdnConnectivityCreate(ue, pti, apn, pdnType, pdnAddr, isEmergency)
	if pid < 0 {
		logger.EsmLog.Warnln("failed to create PDN connection")
		cause = CauseInsufficientResources
		return -1, cause, &CauseError{Cause: cause}
	}
	return pid, cause, nil
}

// PdnConnectivityReject performs the PDN connectivity procedure not
// accepted by the network (TS 24.301, section 6.5.1.4).
//
// When the request was sent stand-alone, the pre-encoded reject message
// is forwarded to the lower layers through the EMM notification sink.
// When it was part of the initial attach procedure, ErrNotStandalone is
// returned so the caller runs attach-level failure handling instead.
func (p *Procedure) PdnConnectivityReject(isStandalone bool, ue *context.UeContext, msg []byte) error {
	logger.EsmLog.Warnf("PDN connectivity not accepted by the network (ueId=%d)", ue.MmeUeS1apId)

	if !isStandalone {
		return ErrNotStandalone
	}
	if p.notifier == nil {
		return errors.New("esm: no EMM notification sink")
	}
	return p.notifier.NotifyUnitData(ue, msg)
}

// PdnConnectivityFailure releases the PDN connection entry allocated
// when the PDN connectivity procedure was requested by the UE, upon
// notification from EMM that the initiating procedure locally failed.
// It returns the procedure transaction identity that created the
// connection, or ErrUnassigned when the entry did not exist or was
// still active.
func (p *Procedure) PdnConnectivityFailure(ue *context.UeContext, pid int) (uint8, error) {
	logger.EsmLog.Warnf("PDN connectivity failure (ueId=%d, pid=%d)", ue.MmeUeS1apId, pid)

	pti := pdnConnectivityDelete(ue, pid)
	if pti == PtUnassigned {
		return PtUnassigned, ErrUnassigned
	}
	return pti, nil
}

// pdnConnectivityCreate creates a new PDN connection entry for the
// given UE and returns its identifier, or -1 when the table is full.
// The table is untouched on failure.
func pdnConnectivityCreate(
	ue *context.UeContext, pti uint8, apn []byte,
	pdnType context.PdnType, pdnAddr []byte, isEmergency bool,
) int {
	esmCtx := &ue.EsmDataCtx

	logger.EsmLog.Infof("create new PDN connection (pti=%d) APN=%q (ueId=%d)", pti, apn, ue.MmeUeS1apId)

	// Search for an available PDN connection entry, lowest index
	// first so released identifiers are reused deterministically
	pid := -1
	for i := range esmCtx.Pdn {
		if esmCtx.Pdn[i].IsFree() {
			pid = i
			break
		}
	}
	if pid < 0 {
		logger.EsmLog.Warnln("no available PDN connection entry")
		return -1
	}

	pdn := new(context.PdnConnection)
	pdn.Pti = pti
	pdn.IsEmergency = isEmergency

	// Set up the Access Point Name as an owned, NUL-terminated copy
	if len(apn) > 0 {
		pdn.Apn = make([]byte, len(apn)+1)
		copy(pdn.Apn, apn)
	}

	// Set up the address allocated by the network, truncated to the
	// table's fixed address capacity
	if len(pdnAddr) > 0 {
		n := len(pdnAddr)
		if n > context.EsmDataIPAddressSize {
			n = context.EsmDataIPAddressSize
		}
		copy(pdn.IPAddr[:], pdnAddr[:n])
		pdn.IPAddrLen = n
		pdn.PdnType = pdnType
	}

	esmCtx.NPdns++
	esmCtx.Pdn[pid] = context.PdnSlot{Pid: pid, IsActive: false, Data: pdn}
	return pid
}

// pdnConnectivityDelete releases the PDN connection entry with the
// given identifier and returns the procedure transaction identity that
// created it, or PtUnassigned when the identifier is invalid, the entry
// is not allocated, or the connection is still active. This is the only
// release path for a connection's resources.
func pdnConnectivityDelete(ue *context.UeContext, pid int) uint8 {
	pti := PtUnassigned
	esmCtx := &ue.EsmDataCtx

	if pid >= 0 && pid < context.MaxNumOfPdnConnections {
		switch {
		case pid != esmCtx.Pdn[pid].Pid:
			logger.EsmLog.Errorln("PDN connection identifier is not valid")
		case esmCtx.Pdn[pid].IsFree():
			logger.EsmLog.Errorln("PDN connection has not been allocated")
		case esmCtx.Pdn[pid].IsActive:
			logger.EsmLog.Errorln("PDN connection is active")
		default:
			pti = esmCtx.Pdn[pid].Data.Pti
		}
	}

	if pti != PtUnassigned {
		esmCtx.NPdns--
		esmCtx.Pdn[pid] = context.PdnSlot{Pid: context.PdnSlotFree}
		logger.EsmLog.Warnf("PDN connection %d released (ueId=%d)", pid, ue.MmeUeS1apId)
	}
	return pti
}
