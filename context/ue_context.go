// SPDX-FileCopyrightText: 2025 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package context

// UeContext represents one attached subscriber in the MME. The
// embedded ESM data context is owned exclusively by this UE and must
// only be touched from the task serving this UE's events.
type UeContext struct {
	MmeUeS1apId int64
	Imsi        string

	// EPS session management data (PDN connection table)
	EsmDataCtx EsmDataContext

	MmeCtx *MMEContext
}

// Initialize UE context
func (ue *UeContext) init(mmeUeS1apId int64) {
	ue.MmeUeS1apId = mmeUeS1apId
	ue.EsmDataCtx.init()
}

// Remove cleans up the UE context and releases its identifiers.
func (ue *UeContext) Remove() {
	mmeCtx := ue.MmeCtx
	if mmeCtx == nil {
		return
	}
	mmeCtx.DeleteUeContext(ue.MmeUeS1apId)
}
