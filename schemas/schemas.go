// Package schemas embeds the JSON Schemas payloads are validated
// against.
package schemas

import _ "embed"

//go:embed internship.json
var InternshipSubmission string
