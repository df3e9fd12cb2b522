//go:build !windows

package display

import "log"

func LogConfiguration() {
	monitors, err := List()
	if err != nil {
		log.Printf("MONITOR: %v", err)
		return
	}
	log.Printf("MONITOR: Detected %d monitors", len(monitors))
}
