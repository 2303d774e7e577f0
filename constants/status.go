package constants

// ValidationStatus is the verdict attached to a validation result.
type ValidationStatus string

// Stable values (these exact strings go out on the wire).
const (
	StatusSuccess ValidationStatus = "Success" // nothing raised a flag
	StatusSuspect ValidationStatus = "Suspect" // low similarity or missing company
)

// NotFound is the sentinel for certificate fields that could not be
// recovered. Fields are always this sentinel or a value, never empty.
const NotFound = "Not Found"
