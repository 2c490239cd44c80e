package fixture

import (
	_ "embed"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var schemaSource string

var (
	schemaOnce sync.Once
	schemaVal  cue.Value
	schemaErr  error
)

// schema compiles the embedded scenario schema once per process.
func schema() (cue.Value, error) {
	schemaOnce.Do(func() {
		ctx := cuecontext.New()
		schemaVal = ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
		if err := schemaVal.Err(); err != nil {
			schemaErr = fmt.Errorf("compile scenario schema: %w", err)
		}
	})
	return schemaVal, schemaErr
}

// validateSchema unifies the YAML document with the scenario schema and
// reports the first violation with its position.
func validateSchema(path string, data []byte) error {
	sch, err := schema()
	if err != nil {
		return err
	}

	file, err := cueyaml.Extract(path, data)
	if err != nil {
		return fmt.Errorf("parse scenario YAML: %w", err)
	}

	val := sch.Context().BuildFile(file)
	if err := val.Err(); err != nil {
		return fmt.Errorf("build scenario value: %w", err)
	}

	unified := sch.Unify(val)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("scenario schema violation: %w", err)
	}
	return nil
}
