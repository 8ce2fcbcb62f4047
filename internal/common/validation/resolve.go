// internal/common/validation/resolve.go
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// resolveSchema is the structural contract shared by the resolve
// endpoints: an object whose hits field is an array of objects. Field
// contents are validated per hit downstream; this gate only decides
// whether a payload has the shape a normalizer can work with.
const resolveSchema = `{
	"type": "object",
	"properties": {
		"hits": {
			"type": "array",
			"items": {"type": "object"}
		}
	},
	"required": ["hits"]
}`

var resolveLoader = gojsonschema.NewStringLoader(resolveSchema)

// CheckResolvePayload reports a descriptive error when raw is not an
// object carrying an array-valued hits field.
func CheckResolvePayload(raw []byte) error {
	result, err := gojsonschema.Validate(resolveLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("resolve payload is not valid JSON: %w", err)
	}
	if !result.Valid() {
		messages := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			messages = append(messages, desc.String())
		}
		return fmt.Errorf("resolve payload shape invalid: %s", strings.Join(messages, "; "))
	}
	return nil
}
