// Package docs registers the service's OpenAPI document with swag so that
// echo-swagger can serve it at /swagger/doc.json.
package docs

import (
	"fmt"

	"fooddelivery/internal/generated/servers"

	"github.com/swaggo/swag"
)

// SwaggerInfo is the registered document. It renders the same OpenAPI
// document the request validator uses.
var SwaggerInfo = &document{}

type document struct {
	json string
}

// ReadDoc returns the OpenAPI document as JSON.
func (d *document) ReadDoc() string {
	return d.json
}

func render() (string, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return "", fmt.Errorf("loading openapi document: %w", err)
	}
	data, err := doc.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("encoding openapi document: %w", err)
	}
	return string(data), nil
}

// The document is embedded at build time, so a failure here is a broken build.
func init() {
	data, err := render()
	if err != nil {
		panic(err)
	}
	SwaggerInfo.json = data
	swag.Register(swag.Name, SwaggerInfo)
}
