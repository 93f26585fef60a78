package entity

// DirectoryEntry is one device in a directory snapshot as consumed by the
// identity resolver: the identity columns plus the raw module documents that
// may carry alternate names, asset tags, or hostnames.
type DirectoryEntry struct {
	SerialNumber string
	DeviceID     string
	AssetTag     string
	Name         string
	// Modules maps a module name (e.g. "inventory", "network") to the
	// latest document stored for that module.
	Modules map[string]map[string]any
}
