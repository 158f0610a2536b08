// Package api embeds the OpenAPI description of the HTTP API.
package api

import _ "embed"

// OpenAPI is the OpenAPI 3 document served at /openapi.json.
//
//go:embed openapi.json
var OpenAPI []byte
