// SPDX-FileCopyrightText: 2025 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package service

import (
	ctx "context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	mmeContext "github.com/omec-project/mme-sm/context"
	"github.com/omec-project/mme-sm/emm"
	"github.com/omec-project/mme-sm/esm"
	"github.com/omec-project/mme-sm/factory"
	"github.com/omec-project/mme-sm/logger"
	"github.com/omec-project/mme-sm/util"
	utilLogger "github.com/omec-project/util/logger"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EmmNotifierDepth bounds the backlog of ESM PDUs pending towards EMM.
const EmmNotifierDepth = 64

// MMESM main struct
type MMESM struct {
	notifier  *emm.ChannelNotifier
	procedure *esm.Procedure
}

// Config holds configuration file path
type Config struct {
	cfg string
}

var config Config

var mmeSmCLi = []cli.Flag{
	cli.StringFlag{
		Name:     "cfg",
		Usage:    "mme-sm config file",
		Required: true,
	},
}

func (*MMESM) GetCliCmd() (flags []cli.Flag) {
	return mmeSmCLi
}

// Initialize loads config and sets log levels
func (m *MMESM) Initialize(c *cli.Context) error {
	config = Config{cfg: c.String("cfg")}
	absPath, err := filepath.Abs(config.cfg)
	if err != nil {
		logger.CfgLog.Errorln(err)
		return err
	}
	if err := factory.InitConfigFactory(absPath); err != nil {
		return err
	}
	if err := factory.CheckConfigVersion(); err != nil {
		return err
	}
	m.setLogLevel()
	return nil
}

// setLogLevel configures log levels for all modules
func (m *MMESM) setLogLevel() {
	cfgLogger := factory.MmeSmConfig.Logger
	if cfgLogger == nil {
		logger.InitLog.Warnln("MME-SM config without log level setting")
		return
	}
	setModuleLogLevel(cfgLogger.MME, logger.InitLog, logger.SetLogLevel, "MME-SM")
}

// setModuleLogLevel is a helper to reduce repetition in log level setup
func setModuleLogLevel(moduleCfg *utilLogger.LogSetting, logObj *zap.SugaredLogger, setLevel func(zapcore.Level), moduleName string) {
	if moduleCfg == nil {
		logObj.Warnf("%s Log level not set. Default set to [info] level", moduleName)
		setLevel(zap.InfoLevel)
		return
	}
	if moduleCfg.DebugLevel != "" {
		level, err := zapcore.ParseLevel(moduleCfg.DebugLevel)
		if err != nil {
			logObj.Warnf("%s Log level [%s] is invalid, set to [info] level", moduleName, moduleCfg.DebugLevel)
			setLevel(zap.InfoLevel)
		} else {
			logObj.Infof("%s Log level is set to [%s] level", moduleName, level)
			setLevel(level)
		}
	} else {
		logObj.Warnf("%s Log level not set. Default set to [info] level", moduleName)
		setLevel(zap.InfoLevel)
	}
}

// FilterCli returns CLI args for flags
func (m *MMESM) FilterCli(c *cli.Context) (args []string) {
	for _, flag := range m.GetCliCmd() {
		name := flag.GetName()
		value := fmt.Sprint(c.Generic(name))
		if value == "" {
			continue
		}
		args = append(args, "--"+name, value)
	}
	return args
}

// Procedure exposes the PDN connectivity procedure wired at Start.
func (m *MMESM) Procedure() *esm.Procedure {
	return m.procedure
}

// Start wires the session management plane and handles graceful shutdown
func (m *MMESM) Start() {
	logger.InitLog.Infoln("server started")
	var cancel ctx.CancelFunc
	mmeCtx := mmeContext.MMESelf()
	mmeCtx.Ctx, cancel = ctx.WithCancel(ctx.Background())
	defer cancel()

	if !util.InitMmeContext() {
		logger.InitLog.Errorln("initializing context failed")
		return
	}

	m.notifier = emm.NewChannelNotifier(EmmNotifierDepth)
	m.procedure = esm.NewProcedure(m.notifier, &esm.ConfiguredPolicy{
		IPv4:                     mmeCtx.IPv4Supported,
		IPv6:                     mmeCtx.IPv6Supported,
		SingleAddressBearersOnly: mmeCtx.SingleAddressBearersOnly,
	})

	mmeCtx.Wg.Add(1)
	go m.serveEmmNotifications(mmeCtx)

	mmeCtx.Wg.Add(1)
	go m.ListenShutdownEvent(mmeCtx, cancel)

	mmeCtx.Wg.Wait()
	logger.InitLog.Infoln("server stopped")
}

// serveEmmNotifications drains the ESM to EMM notification channel and
// hands each PDU to the lower layer delivery owned by the embedding
// system.
func (m *MMESM) serveEmmNotifications(mmeCtx *mmeContext.MMEContext) {
	defer util.RecoverWithLog(logger.EmmLog)
	defer mmeCtx.Wg.Done()

	for {
		select {
		case <-mmeCtx.Ctx.Done():
			return
		case n := <-m.notifier.Notifications():
			logger.EmmLog.Infof("forwarding ESM PDU (%d octets) to lower layers (ueId=%d)",
				len(n.Msg), n.Ue.MmeUeS1apId)
		}
	}
}

// ListenShutdownEvent terminates on SIGINT/SIGTERM
func (m *MMESM) ListenShutdownEvent(mmeCtx *mmeContext.MMEContext, cancel ctx.CancelFunc) {
	defer util.RecoverWithLog(logger.InitLog)
	defer mmeCtx.Wg.Done()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	select {
	case sig := <-shutdown:
		logger.InitLog.Infof("received signal %v, terminating", sig)
	case <-mmeCtx.Ctx.Done():
	}
	cancel()
}
