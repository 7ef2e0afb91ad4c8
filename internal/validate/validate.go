// Package validate normalizes and checks destination URLs before they are
// registered.
package validate

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/Vaibhavmishra08/urlshortner/internal/entity"
)

// destinationPattern admits the characters conventionally valid in a URL:
// alphanumerics plus the unreserved and reserved punctuation sets.
var destinationPattern = regexp.MustCompile(`^[0-9A-Za-z\-_.~:/?#\[\]@!$&'()*+,;=%]+$`)

// hostPattern requires at least one dot-separated label pair, e.g.
// "example.com" or "192.168.0.1"; bare names like "localhost" fail.
var hostPattern = regexp.MustCompile(`^[0-9A-Za-z]([0-9A-Za-z-]*[0-9A-Za-z])?(\.[0-9A-Za-z]([0-9A-Za-z-]*[0-9A-Za-z])?)+$`)

// Destination normalizes raw and reports whether it is an acceptable
// destination URL.
//
// The input is trimmed and, when no http:// or https:// prefix is present
// (case-insensitive), prefixed with https://. The normalized string must
// contain only characters conventionally valid in a URL and must parse as an
// absolute URL whose host carries at least one dot-separated label pair. On
// success the normalized string is returned unchanged: no trailing-slash
// normalization, percent-encoding, or case folding is applied.
//
// Failures are entity.ErrEmptyDestination and entity.ErrInvalidDestination;
// both mean the caller should re-prompt for different input.
func Destination(raw string) (string, error) {
	const op = "validate.Destination"

	destination := strings.TrimSpace(raw)
	if destination == "" {
		return "", fmt.Errorf("%s: %w", op, entity.ErrEmptyDestination)
	}

	lower := strings.ToLower(destination)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		destination = "https://" + destination
	}

	if !destinationPattern.MatchString(destination) {
		return "", fmt.Errorf("%s: %w", op, entity.ErrInvalidDestination)
	}

	u, err := url.ParseRequestURI(destination)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, entity.ErrInvalidDestination)
	}

	if !hostPattern.MatchString(u.Hostname()) {
		return "", fmt.Errorf("%s: %w", op, entity.ErrInvalidDestination)
	}

	return destination, nil
}
