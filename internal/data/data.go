// Package data carries the bundled job data set.
package data

import _ "embed"

//go:embed jobs.json
var JobsJSON []byte
