// Package schemas holds the JSON Schema documents for analysis requests and results.
package schemas

import _ "embed"

// AnalysisRequest is the schema for an analysis request document
//
//go:embed analysis_request.schema.json
var AnalysisRequest string

// AnalysisResult is the schema for an analysis result document
//
//go:embed analysis_result.schema.json
var AnalysisResult string
