// SPDX-FileCopyrightText: 2025 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

// Package emm carries the notification surface between the ESM sublayer
// and the EPS mobility management sublayer. The MME event loop owns the
// notification channel and forwards each ESM PDU to the lower layers.
package emm

import (
	"errors"

	"github.com/omec-project/mme-sm/context"
	"github.com/omec-project/mme-sm/logger"
)

// UnitDataNotification asks EMM to forward a pre-encoded ESM PDU to the
// lower layers serving the given UE.
type UnitDataNotification struct {
	Ue  *context.UeContext
	Msg []byte
}

// ErrNotifierSaturated is returned when the notification channel is
// full and the ESM PDU could not be handed to the EMM task.
var ErrNotifierSaturated = errors.New("emm: notification channel saturated")

// ChannelNotifier implements the ESM-facing notification interface on
// top of a buffered channel drained by the embedding system's EMM task.
type ChannelNotifier struct {
	ch chan UnitDataNotification
}

func NewChannelNotifier(depth int) *ChannelNotifier {
	return &ChannelNotifier{ch: make(chan UnitDataNotification, depth)}
}

// NotifyUnitData hands the ESM PDU to the EMM task without blocking.
func (n *ChannelNotifier) NotifyUnitData(ue *context.UeContext, msg []byte) error {
	select {
	case n.ch <- UnitDataNotification{Ue: ue, Msg: msg}:
		return nil
	default:
		logger.EmmLog.Errorf("dropping ESM PDU for ueId=%d, EMM task not draining", ue.MmeUeS1apId)
		return ErrNotifierSaturated
	}
}

// Notifications exposes the channel for the EMM task to drain.
func (n *ChannelNotifier) Notifications() <-chan UnitDataNotification {
	return n.ch
}
