// Package notification sends desktop notifications through beeep.
package notification

import (
	"fmt"
	"sync"

	"github.com/gen2brain/beeep"
	"github.com/zhubert/chatshell/internal/logger"
)

// AppName is the title used for chatshell notifications.
const AppName = "chatshell"

type notifyFunc func(title, message string, icon any) error

var (
	mu       sync.Mutex
	notifier notifyFunc = beeep.Notify
)

// SetNotifier replaces the function used to deliver notifications.
func SetNotifier(fn func(title, message string, icon any) error) {
	mu.Lock()
	defer mu.Unlock()
	notifier = fn
}

// ResetNotifier restores delivery through beeep.
func ResetNotifier() {
	SetNotifier(beeep.Notify)
}

// Send sends a desktop notification with the given title and message.
// An empty icon lets beeep pick the platform default.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title, "message", message)

	mu.Lock()
	fn := notifier
	mu.Unlock()

	if err := fn(title, message, ""); err != nil {
		log.Warn("failed to send notification", "error", err)
		return err
	}
	return nil
}

// RunFinished reports the outcome of a pnpm run.
func RunFinished(command string, exitCode int) error {
	if exitCode == 0 {
		return Send(AppName, fmt.Sprintf("pnpm %s finished", command))
	}
	return Send(AppName, fmt.Sprintf("pnpm %s failed (exit %d)", command, exitCode))
}
