// Package docs registers the OpenAPI document served by the swagger UI.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var document string

type doc struct{}

func (doc) ReadDoc() string {
	return document
}

func init() {
	swag.Register(swag.Name, doc{})
}
