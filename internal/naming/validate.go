package naming

import (
	"fmt"

	"docmcp/internal/errors"
)

// CompositeCeiling is the hard length ceiling for the fully qualified tool
// identifier mcp__<server>__<tool>. Clients truncate or reject identifiers
// beyond this length, so overflow is an error, never a silent clamp.
const CompositeCeiling = 64

// Composite returns the fully qualified identifier for a server/tool pair.
func Composite(serverName, toolName string) string {
	return "mcp__" + serverName + "__" + toolName
}

// ValidateToolName checks the composite identifier against CompositeCeiling.
// The check is inclusive: exactly CompositeCeiling passes. On overflow it
// returns a NAME_TOO_LONG error whose details carry the composite string and
// length, the ceiling, both components with their individual lengths, and a
// corrective instruction; it never truncates.
func ValidateToolName(serverName, toolName string) error {
	composite := Composite(serverName, toolName)
	if len(composite) <= CompositeCeiling {
		return nil
	}

	msg := fmt.Sprintf("Combined tool identifier %q is %d characters long, exceeding the %d character limit",
		composite, len(composite), CompositeCeiling)
	return errors.New(errors.NameTooLong, msg, nil).WithDetails(map[string]any{
		"composite":        composite,
		"compositeLength":  len(composite),
		"ceiling":          CompositeCeiling,
		"serverName":       serverName,
		"serverNameLength": len(serverName),
		"toolName":         toolName,
		"toolNameLength":   len(toolName),
		"instruction":      fmt.Sprintf("Provide a shorter project name so that mcp__<server>__<tool> fits in %d characters", CompositeCeiling),
	})
}
