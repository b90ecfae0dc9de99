package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	analysisSchemaOnce sync.Once
	analysisSchema     *jsonschema.Schema
	analysisSchemaErr  error
)

// compiledAnalysisSchema compiles the analysis schema on first use. The
// schema is fixed for the life of the process, so one compilation serves
// every model reply.
func compiledAnalysisSchema() (*jsonschema.Schema, error) {
	analysisSchemaOnce.Do(func() {
		b, err := json.Marshal(BuildAnalysisJSONSchema())
		if err != nil {
			analysisSchemaErr = fmt.Errorf("marshal analysis schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("analysis.json", bytes.NewReader(b)); err != nil {
			analysisSchemaErr = fmt.Errorf("add analysis schema: %w", err)
			return
		}
		analysisSchema, analysisSchemaErr = compiler.Compile("analysis.json")
	})
	return analysisSchema, analysisSchemaErr
}

// ValidateAnalysis checks a stripped model reply against the analysis
// schema: all five fields present, correct types, no extra keys.
func ValidateAnalysis(raw []byte) error {
	schema, err := compiledAnalysisSchema()
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("unmarshal analysis: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("analysis does not match schema: %w", err)
	}
	return nil
}
