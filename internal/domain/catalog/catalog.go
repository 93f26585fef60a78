// Package catalog holds the static mapping of recognized telemetry module
// names to their storage tables. The mapping is configuration, not mutable
// state: it is built once at package init and only read afterwards.
package catalog

import (
	"sort"
)

// moduleTables maps a telemetry module name to the table its documents are
// stored in. Module names submitted by endpoints that are absent here are
// skipped during fan-out.
var moduleTables = map[string]string{
	"applications": "module_applications",
	"displays":     "module_displays",
	"hardware":     "module_hardware",
	"installs":     "module_installs",
	"inventory":    "module_inventory",
	"management":   "module_management",
	"network":      "module_network",
	"peripherals":  "module_peripherals",
	"printers":     "module_printers",
	"profiles":     "module_profiles",
	"security":     "module_security",
	"system":       "module_system",
}

// Recognized reports whether the module name is a known telemetry category.
func Recognized(module string) bool {
	_, ok := moduleTables[module]

	return ok
}

// TableFor returns the storage table for a module name. The second return
// value is false for unrecognized modules.
func TableFor(module string) (string, bool) {
	table, ok := moduleTables[module]

	return table, ok
}

// Modules returns all recognized module names in sorted order, for
// deterministic iteration.
func Modules() []string {
	names := make([]string, 0, len(moduleTables))
	for name := range moduleTables {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
