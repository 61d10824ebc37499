package model

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed record.schema.json
var recordSchema string

// ValidateRecord validates a reconciled record against record.schema.json.
// The schema is embedded so validation works regardless of working directory.
func ValidateRecord(r *Record) error {
	schemaLoader := gojsonschema.NewStringLoader(recordSchema)
	docLoader := gojsonschema.NewGoLoader(r)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	// collect errors
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}
