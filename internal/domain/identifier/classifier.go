// Package identifier classifies free-form device identifiers so the resolver
// can prioritize its lookup strategies.
package identifier

import (
	"regexp"
	"strings"
	"unicode"
)

// Kind tags the syntactic shape of a user-supplied identifier.
type Kind string

const (
	KindUUID         Kind = "uuid"
	KindAssetTag     Kind = "assetTag"
	KindSerialNumber Kind = "serialNumber"
	KindDeviceName   Kind = "deviceName"
	KindHostname     Kind = "hostname"
)

var (
	// Canonical 8-4-4-4-12 hexadecimal grouping, case-insensitive.
	uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

	// Single leading letter followed by digits, e.g. "A004733".
	assetTagPattern = regexp.MustCompile(`^[A-Za-z][0-9]+$`)

	// Dot-separated alphanumeric labels; hyphens allowed inside a label but
	// not at its edges.
	hostnamePattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?)*$`)
)

// Classify maps an arbitrary identifier string to exactly one Kind using
// first-match-wins ordered rules. It is a pure, total function: every input
// classifies, with KindSerialNumber as the default.
//
// Misclassification only affects which resolution strategy is tried first;
// the resolver still attempts every strategy, so a wrong tag never produces
// a wrong resolution.
func Classify(raw string) Kind {
	switch {
	case uuidPattern.MatchString(raw):
		return KindUUID
	case strings.ContainsFunc(raw, unicode.IsSpace):
		return KindDeviceName
	case assetTagPattern.MatchString(raw):
		return KindAssetTag
	case (strings.Contains(raw, ".") || strings.Contains(raw, "-")) && hostnamePattern.MatchString(raw):
		return KindHostname
	default:
		return KindSerialNumber
	}
}
