package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/skillgap/internal/schemas"
	"github.com/jonathan/skillgap/internal/types"
)

// LoadRequest reads an AnalysisRequest file, validating it against the request schema
// and the struct validation rules
func LoadRequest(path string) (*types.AnalysisRequest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request file %s: %w", path, err)
	}

	if err := schemas.ValidateAnalysisRequest(content); err != nil {
		return nil, fmt.Errorf("request %s failed schema validation: %w", path, err)
	}

	var req types.AnalysisRequest
	if err := json.Unmarshal(content, &req); err != nil {
		return nil, fmt.Errorf("failed to unmarshal request JSON: %w", err)
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request %s: %w", path, err)
	}

	return &req, nil
}

// MarshalResult encodes a result and checks it against the result schema
func MarshalResult(result *types.AnalysisResult) ([]byte, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	if err := schemas.ValidateAnalysisResult(data); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return nil, fmt.Errorf("generated analysis is invalid: %w", err)
		}
		// Schema loading issue; the result itself is still usable
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
	}

	return data, nil
}

// WriteResult writes a validated result to path, creating its directory
func WriteResult(path string, result *types.AnalysisResult) error {
	data, err := MarshalResult(result)
	if err != nil {
		return err
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write analysis to %s: %w", path, err)
	}
	return nil
}
