// SPDX-FileCopyrightText: 2025 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"github.com/omec-project/mme-sm/context"
	"github.com/omec-project/mme-sm/factory"
	"github.com/omec-project/mme-sm/logger"
)

func InitMmeContext() bool {
	mmeCfg := factory.MmeSmConfig.Configuration
	if mmeCfg == nil {
		logger.CtxLog.Errorln("no MME configuration found")
		return false
	}

	m := context.MMESelf()

	m.MmeName = mmeCfg.MmeName
	if m.MmeName == "" {
		logger.CtxLog.Errorln("MME name is empty")
		return false
	}

	caps := mmeCfg.IpCapabilities
	if !caps.IPv4 && !caps.IPv6 {
		logger.CtxLog.Errorln("at least one of IPv4 and IPv6 capability must be enabled")
		return false
	}
	m.IPv4Supported = caps.IPv4
	m.IPv6Supported = caps.IPv6
	m.SingleAddressBearersOnly = caps.SingleAddressBearers

	return true
}
