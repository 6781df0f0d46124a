package state

import (
	"fmt"
	"net/url"
	"strings"
)

var (
	// CopyActions lists the accepted default_copy_action values
	CopyActions = []string{"copy_code", "copy_emoji"}

	// MatchModes lists the accepted match_mode values
	MatchModes = []string{"substring", "fuzzy"}

	// ClipboardBackends lists the accepted clipboard backend names
	ClipboardBackends = []string{"auto", "system", "osc52", "klipper", "stdout"}
)

func oneOf(value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%q (must be one of: %s)", value, strings.Join(allowed, ", "))
}

// ValidateCopyAction validates a default copy action name.
func ValidateCopyAction(action string) error {
	return oneOf(action, CopyActions)
}

// ValidateMatchMode validates a suggestion match mode.
func ValidateMatchMode(mode string) error {
	return oneOf(mode, MatchModes)
}

// ValidateClipboardBackend validates a clipboard backend name.
func ValidateClipboardBackend(backend string) error {
	return oneOf(backend, ClipboardBackends)
}

// ValidateURL validates the remote catalog URL.
// Only absolute http and https URLs are accepted.
func ValidateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("url cannot be empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse url %q: %w", raw, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url must use http or https: %q", raw)
	}

	if u.Host == "" {
		return fmt.Errorf("url must have a host: %q", raw)
	}

	return nil
}
