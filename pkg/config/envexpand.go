package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv substitutes {{.VAR_NAME}} references in YAML content with the
// named environment variables. Go template syntax is used instead of $VAR
// so that literal dollar signs survive untouched; providers.yaml values
// like base URLs with query strings, regex-ish model filters, and DSN
// passwords all carry $ legitimately.
//
//	api_key_env: "{{.OPENAI_KEY_VAR}}"
//	base_url: "{{.LLM_GATEWAY_SCHEME}}://{{.LLM_GATEWAY_HOST}}/v1"
//
// Missing variables expand to empty strings; the validation pass rejects
// required fields that end up empty. Content that fails to parse or execute
// as a template is returned unchanged, so plain YAML with no references
// (or with stray braces) still reaches the YAML parser as written.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok && key != "" {
			env[key] = value
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, env); err != nil {
		return data
	}
	return buf.Bytes()
}
