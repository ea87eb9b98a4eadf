// SPDX-FileCopyrightText: 2025 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package context

import (
	"context"
	"sync"

	"github.com/omec-project/mme-sm/logger"
	"github.com/omec-project/util/idgenerator"
)

var mmeContext = MMEContext{}

type MMEContext struct {
	MmeName string

	// ID generator
	MmeUeS1apIdGenerator *idgenerator.IDGenerator

	// Pools
	UePool sync.Map // map[int64]*UeContext, MmeUeS1apId as key

	// Network IP capabilities advertised towards the ESM layer
	IPv4Supported            bool
	IPv6Supported            bool
	SingleAddressBearersOnly bool

	Ctx context.Context
	Wg  sync.WaitGroup
}

func init() {
	mmeContext.MmeUeS1apIdGenerator = idgenerator.NewGenerator(1, MaxValueOfMmeUeS1apId)
}

// MMESelf returns the MME context singleton
func MMESelf() *MMEContext {
	return &mmeContext
}

func (mmeCtx *MMEContext) NewUeContext() *UeContext {
	mmeUeS1apId, err := mmeCtx.MmeUeS1apIdGenerator.Allocate()
	if err != nil {
		logger.CtxLog.Errorf("new UE context failed: %+v", err)
		return nil
	}
	ue := new(UeContext)
	ue.init(mmeUeS1apId)
	ue.MmeCtx = mmeCtx
	mmeCtx.UePool.Store(mmeUeS1apId, ue)
	return ue
}

func (mmeCtx *MMEContext) DeleteUeContext(mmeUeS1apId int64) {
	mmeCtx.UePool.Delete(mmeUeS1apId)
	mmeCtx.MmeUeS1apIdGenerator.FreeID(mmeUeS1apId)
}

func (mmeCtx *MMEContext) UePoolLoad(mmeUeS1apId int64) (*UeContext, bool) {
	ue, ok := mmeCtx.UePool.Load(mmeUeS1apId)
	if ok {
		return ue.(*UeContext), ok
	}
	return nil, ok
}
