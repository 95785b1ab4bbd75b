package servers

import (
	_ "embed"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var rawSpec []byte

// RawSpec returns the embedded OpenAPI document as written.
func RawSpec() []byte {
	return rawSpec
}

// GetSwagger returns the Swagger specification corresponding to the generated
// code in this file. External references are not resolved.
func GetSwagger() (swagger *openapi3.T, err error) {
	loader := openapi3.NewLoader()
	swagger, err = loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, err
	}
	return swagger, nil
}
