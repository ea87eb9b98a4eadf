// SPDX-FileCopyrightText: 2025 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package esm

import (
	"github.com/omec-project/mme-sm/context"
)

// CapabilityPolicy checks a requested PDN type against the network IP
// capabilities. It returns the cause to report and whether the request
// may proceed; a request may proceed with a non-success cause when the
// network downgrades it (e.g. single address bearers only).
type CapabilityPolicy interface {
	CheckPdnType(pdnType context.PdnType) (Cause, bool)
}

// PermitAllPolicy accepts every PDN type without restriction.
type PermitAllPolicy struct{}

func (PermitAllPolicy) CheckPdnType(context.PdnType) (Cause, bool) {
	return CauseSuccess, true
}

// ConfiguredPolicy enforces the IP capabilities taken from the MME
// configuration.
type ConfiguredPolicy struct {
	IPv4                     bool
	IPv6                     bool
	SingleAddressBearersOnly bool
}

func (p *ConfiguredPolicy) CheckPdnType(pdnType context.PdnType) (Cause, bool) {
	switch {
	case p.IPv4 && p.IPv6:
		if pdnType == context.PdnTypeIPv4v6 && p.SingleAddressBearersOnly {
			return CauseSingleAddressBearersOnlyAllowed, true
		}
		return CauseSuccess, true
	case p.IPv6:
		return CausePdnTypeIPv6OnlyAllowed, pdnType != context.PdnTypeIPv4
	case p.IPv4:
		return CausePdnTypeIPv4OnlyAllowed, pdnType != context.PdnTypeIPv6
	default:
		return CauseRequestRejectedUnspecified, false
	}
}
