package notification

import (
	"log"
)

const maxMessageLen = 1024

// ShowInfo displays an informational message box, or logs the message where
// message boxes aren't available.
func ShowInfo(title, message string) {
	message = truncate(message)
	if err := showMessageBox(title, message, false); err != nil {
		log.Printf("Failed to show notification: %v", err)
		log.Printf("%s: %s", title, message)
	}
}

// ShowBlockingError displays a modal, blocking error dialog and returns after
// the user dismisses it.
func ShowBlockingError(title, message string) {
	message = truncate(message)
	if err := showMessageBox(title, message, true); err != nil {
		log.Printf("Failed to show error dialog: %v", err)
		log.Printf("%s: %s", title, message)
	}
}

func truncate(text string) string {
	r := []rune(text)
	if len(r) > maxMessageLen {
		return string(r[:maxMessageLen]) + "..."
	}
	return text
}
