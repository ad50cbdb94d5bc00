// Package schemas holds the JSON Schema documents for the CV and its outbound payloads.
package schemas

import "embed"

// Schema file names
const (
	CV             = "cv.schema.json"
	CleanCV        = "clean_cv.schema.json"
	ReviewResponse = "review_response.schema.json"
)

//go:embed *.schema.json
var FS embed.FS

// All lists every embedded schema file
var All = []string{CV, CleanCV, ReviewResponse}
