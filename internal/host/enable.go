package host

import (
	"context"
	"fmt"
)

// Outcome is the result of Enable.
type Outcome int

const (
	// Unavailable means no site is connected.
	Unavailable Outcome = iota
	// Enabled means the extension was refreshed and installed.
	Enabled
	// Failed means the site reported an error.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Unavailable:
		return "unavailable"
	case Enabled:
		return "enabled"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Notifier receives user-facing messages from Enable.
type Notifier interface {
	Info(msg string)
	Error(msg string)
}

// Enable refreshes the site's extension list and installs key. A nil
// Registrar is not an error: the user is reminded to do it by hand.
func Enable(ctx context.Context, reg Registrar, key string, n Notifier) Outcome {
	if reg == nil {
		n.Info(fmt.Sprintf("NOTE: This might be a good time to refresh the extension list and install %q.", key))
		return Unavailable
	}

	site := reg.Name()
	n.Info(fmt.Sprintf("Refresh extension list for %q", site))
	if err := reg.Refresh(ctx); err != nil {
		n.Error("Refresh error: " + err.Error())
		return Failed
	}

	n.Info(fmt.Sprintf("Enable extension (%s) in %q", key, site))
	if err := reg.Install(ctx, key); err != nil {
		n.Error("Install error: " + err.Error())
		return Failed
	}

	n.Info(fmt.Sprintf("Extension (%s) enabled in %q", key, site))
	return Enabled
}
