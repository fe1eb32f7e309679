package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	"billnote/internal/platform/config"

	"billnote/internal/services/api/docs"
)

// SpecMutator adjusts the parsed spec before it is served
type SpecMutator func(map[string]any)

var mutators []SpecMutator

// docReader is a seam for tests
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// Register adds a spec mutator
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		ensureServers(spec, "/api/v1")

		cfg := config.New().Prefix("BILLNOTE_API_")
		if v := cfg.MayString("DOCS_TITLE_SUFFIX", ""); v != "" {
			if info, ok := spec["info"].(map[string]any); ok {
				if title, ok := info["title"].(string); ok {
					info["title"] = title + " " + v
				}
			}
		}

		addDefaultResponse(spec, "500", "Internal Server Error", 500, 1, "internal error")

		for _, m := range mutators {
			m(spec)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureServers pins the document to OAS 3.0.3 (the UI cannot render 3.1) with a servers entry
func ensureServers(spec map[string]any, url string) {
	if _, ok := spec["swagger"]; ok {
		delete(spec, "swagger")
		spec["openapi"] = "3.0.3"
	}
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	servers, _ := spec["servers"].([]any)
	if len(servers) == 0 {
		spec["servers"] = []any{map[string]any{"url": url}}
		return
	}
	if first, ok := servers[0].(map[string]any); ok && first["url"] == "" {
		first["url"] = url
	}
}

// addDefaultResponse adds status to every operation that does not declare it
func addDefaultResponse(spec map[string]any, status, desc string, statusCode, code int, msg string) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	resp := map[string]any{
		"description": desc,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/Envelope"},
				"example": map[string]any{
					"status_code": statusCode,
					"status":      desc,
					"code":        code,
					"error":       msg,
					"request_id":  "6f1c0f0e-7d8a-4c1e-9a51-3b0a2f1d9c77",
				},
			},
		},
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses, ok := op["responses"].(map[string]any)
			if !ok {
				responses = map[string]any{}
				op["responses"] = responses
			}
			if _, exists := responses[status]; !exists {
				responses[status] = resp
			}
		}
	}
}
