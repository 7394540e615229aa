package httpapi

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var openAPISpec []byte

type openAPIDocument struct {
	OpenAPI string                    `yaml:"openapi"`
	Info    struct{ Title string }    `yaml:"info"`
	Paths   map[string]map[string]any `yaml:"paths"`
}

// ValidateOpenAPI checks that the embedded document parses and documents
// every public API route.
func ValidateOpenAPI() error {
	var doc openAPIDocument
	if err := yaml.Unmarshal(openAPISpec, &doc); err != nil {
		return fmt.Errorf("parse openapi document: %w", err)
	}
	if !strings.HasPrefix(doc.OpenAPI, "3.") {
		return fmt.Errorf("unsupported openapi version %q", doc.OpenAPI)
	}

	for _, route := range documentedRoutes {
		method, path, ok := strings.Cut(route, " ")
		if !ok {
			return fmt.Errorf("malformed route %q", route)
		}
		ops, exists := doc.Paths[path]
		if !exists {
			return fmt.Errorf("openapi document is missing path %s", path)
		}
		if _, exists := ops[strings.ToLower(method)]; !exists {
			return fmt.Errorf("openapi document is missing %s", route)
		}
	}
	return nil
}

func (h *Handler) OpenAPI(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.OpenAPI")
	defer span.End()

	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	_, _ = w.Write(openAPISpec)
	_ = ctx
}

func (h *Handler) SwaggerUI(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SwaggerUI")
	defer span.End()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(swaggerHTML(ctx)))
}

func swaggerHTML(ctx context.Context) string {
	_, span := startSpan(ctx, "httpapi.swaggerHTML")
	defer span.End()

	return fmt.Sprintf(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Pick'em League API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
    <style>
      html, body { margin: 0; padding: 0; }
      #swagger-ui { max-width: 1200px; margin: 0 auto; }
    </style>
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
        deepLinking: true,
        presets: [SwaggerUIBundle.presets.apis],
      });
    </script>
  </body>
</html>`)
}
