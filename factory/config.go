// SPDX-FileCopyrightText: 2025 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package factory

import (
	utilLogger "github.com/omec-project/util/logger"
)

const (
	MME_SM_EXPECTED_CONFIG_VERSION = "1.0.0"
)

type Config struct {
	Info          *Info          `yaml:"info"`
	Configuration *Configuration `yaml:"configuration"`
	Logger        *Logger        `yaml:"logger"`
}

type Info struct {
	Version     string `yaml:"version,omitempty"`
	Description string `yaml:"description,omitempty"`
}

type Configuration struct {
	MmeName        string         `yaml:"mmeName"`
	IpCapabilities IpCapabilities `yaml:"ipCapabilities"`
}

// IpCapabilities selects the PDN types the network grants and feeds the
// ESM capability policy. Both families enabled with single address
// bearers unset reproduces the permit-all behaviour.
type IpCapabilities struct {
	IPv4                 bool `yaml:"ipv4"`
	IPv6                 bool `yaml:"ipv6"`
	SingleAddressBearers bool `yaml:"singleAddressBearers,omitempty"`
}

type Logger struct {
	MME *utilLogger.LogSetting `yaml:"MME"`
}

func (c *Config) getVersion() string {
	if c.Info != nil && c.Info.Version != "" {
		return c.Info.Version
	}
	return ""
}
