// Where: cli/internal/infra/config/validator.go
// What: JSON schema validation for the global config file.
// Why: Reject typos and wrong types before they reach the remote clients.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

const schemaResource = "config.schema.json"

//go:embed schema/config.schema.json
var configSchema []byte

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// ValidateGlobalConfig checks a YAML payload against the embedded schema.
func ValidateGlobalConfig(content []byte) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}

	if len(bytes.TrimSpace(content)) == 0 {
		return nil
	}

	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("unmarshal json: %w", err)
	}
	if document == nil {
		return nil
	}

	if err := sch.Validate(document); err != nil {
		return err
	}
	return nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaResource, bytes.NewReader(configSchema)); err != nil {
			schemaErr = fmt.Errorf("load config schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaResource)
	})
	return compiledSchema, schemaErr
}
