// SPDX-FileCopyrightText: 2025 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/omec-project/mme-sm/logger"
	"github.com/omec-project/mme-sm/service"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var MMESM = &service.MMESM{}

var appLog *zap.SugaredLogger

func init() {
	appLog = logger.AppLog
}

func main() {
	app := cli.NewApp()
	app.Name = "mme-sm"
	appLog.Infoln(app.Name)
	app.Usage = "-cfg mme-sm configuration file"
	app.Action = action
	app.Flags = MMESM.GetCliCmd()
	if err := app.Run(os.Args); err != nil {
		appLog.Errorf("MME-SM run error: %v", err)
	}
}

func action(c *cli.Context) error {
	if err := MMESM.Initialize(c); err != nil {
		logger.CfgLog.Errorf("%+v", err)
		return fmt.Errorf("failed to initialize")
	}

	MMESM.Start()

	return nil
}
