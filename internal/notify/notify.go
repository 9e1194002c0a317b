package notify

import "github.com/gen2brain/beeep"

const summary = "Discord Watcher"

// Push shows a desktop notification for one rendered event line.
func Push(body string) error {
	return beeep.Notify(summary, body, "")
}
