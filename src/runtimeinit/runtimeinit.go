package runtimeinit

import (
	"fmt"
	"log"

	"desktop-utils/src/clipboard"
	"desktop-utils/src/config"
	"desktop-utils/src/dpi"
)

type Options struct {
	LoadOptions  config.LoadOptions
	SetupLogging func(bool)
	// EnableDPIAwareness must be set by entry points that create windows.
	// It runs once logging is set up and before any window is created.
	EnableDPIAwareness bool
}

var enableAwareness = dpi.EnableAwareness

// Runtime is what Bootstrap resolved for the process.
type Runtime struct {
	Config    *config.Config
	Awareness dpi.Awareness
}

func Bootstrap(opts Options) (*Runtime, error) {
	cfg, err := config.LoadWithOptions(opts.LoadOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.SetupLogging != nil {
		opts.SetupLogging(cfg.EnableFileLogging)
	}

	rt := &Runtime{Config: cfg, Awareness: dpi.Unaware}
	if opts.EnableDPIAwareness {
		rt.Awareness = enableAwareness(cfg.DPIAwareness)
	}
	if cfg.EnvPath != "" {
		log.Printf("Config loaded from %s", cfg.EnvPath)
	}
	log.Printf("DPI awareness: requested=%s effective=%s", cfg.DPIAwareness, rt.Awareness)

	if cfg.CopyToClipboard {
		if err := clipboard.Init(); err != nil {
			return nil, fmt.Errorf("failed to initialize clipboard: %w", err)
		}
	}

	return rt, nil
}
