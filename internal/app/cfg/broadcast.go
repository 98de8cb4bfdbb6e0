package cfg

import (
	"time"

	"evstream/internal"
	"evstream/internal/app/apps"
	"evstream/internal/pkg/broadcast"
)

// BroadcastCfg is configuration for the event broadcaster.
type BroadcastCfg struct {
	interval   time.Duration
	maxTicks   uint64
	recipients broadcast.RecipientMode
}

// NewBroadcastCfg creates a new BroadcastCfg from the given config.
func NewBroadcastCfg(interval time.Duration, maxTicks uint64, recipients broadcast.RecipientMode) *BroadcastCfg {
	return &BroadcastCfg{
		interval:   interval,
		maxTicks:   maxTicks,
		recipients: recipients,
	}
}

// BroadcastFromEnv creates a new BroadcastCfg from the current environment.
func BroadcastFromEnv() *BroadcastCfg {
	return &BroadcastCfg{
		interval:   time.Duration(internal.ServerTickerMS) * time.Millisecond,
		maxTicks:   uint64(internal.MaxTicks),
		recipients: broadcast.RecipientMode(internal.Recipients),
	}
}

// ApplyServerApp applies the BroadcastCfg to a ServerApp.
func (cfg BroadcastCfg) ApplyServerApp(app *apps.ServerApp) error {
	app.Interval = cfg.interval
	app.MaxTicks = cfg.maxTicks
	app.Recipients = cfg.recipients
	return nil
}
