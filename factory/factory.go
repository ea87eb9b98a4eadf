// SPDX-FileCopyrightText: 2025 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package factory

import (
	"fmt"
	"os"

	"github.com/omec-project/mme-sm/logger"
	"gopkg.in/yaml.v2"
)

var MmeSmConfig Config

func InitConfigFactory(f string) error {
	content, err := os.ReadFile(f)
	if err != nil {
		return err
	}

	MmeSmConfig = Config{}
	if err = yaml.Unmarshal(content, &MmeSmConfig); err != nil {
		return err
	}

	return nil
}

func CheckConfigVersion() error {
	currentVersion := MmeSmConfig.getVersion()

	if currentVersion != MME_SM_EXPECTED_CONFIG_VERSION {
		return fmt.Errorf("config version is [%s], but expected is [%s]",
			currentVersion, MME_SM_EXPECTED_CONFIG_VERSION)
	}

	logger.CfgLog.Infof("config version [%s]", currentVersion)

	return nil
}
