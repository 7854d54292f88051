package docs

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerDocumentCoversRoutes(t *testing.T) {
	var doc struct {
		BasePath string                                `json:"basePath"`
		Paths    map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))
	assert.Equal(t, "/v1", doc.BasePath)

	want := map[string][]string{
		"/health":                       {"get"},
		"/session":                      {"delete", "get", "post"},
		"/jobs":                         {"get", "post"},
		"/jobs/{id}":                    {"delete", "get", "patch"},
		"/jobs/{id}/apply":              {"post"},
		"/jobs/{id}/applications":       {"get"},
		"/applications/{id}":            {"get", "patch"},
		"/candidates":                   {"get", "post"},
		"/candidates/{id}":              {"get", "patch"},
		"/candidates/{id}/applications": {"get"},
		"/recruiters":                   {"get", "post"},
		"/analytics/stats":              {"get"},
		"/analytics/report":             {"get"},
	}

	got := map[string][]string{}
	for path, ops := range doc.Paths {
		for method := range ops {
			got[path] = append(got[path], method)
		}
		sort.Strings(got[path])
	}
	assert.Equal(t, want, got)
}
