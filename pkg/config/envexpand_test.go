package config

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "api_key_env indirection",
			input: `api_key_env: "{{.QUORUM_OPENAI_KEY_VAR}}"`,
			env:   map[string]string{"QUORUM_OPENAI_KEY_VAR": "OPENAI_API_KEY"},
			want:  `api_key_env: "OPENAI_API_KEY"`,
		},
		{
			name:  "base_url assembled from several variables",
			input: "base_url: {{.GATEWAY_SCHEME}}://{{.GATEWAY_HOST}}:{{.GATEWAY_PORT}}/v1",
			env: map[string]string{
				"GATEWAY_SCHEME": "https",
				"GATEWAY_HOST":   "llm-gateway.internal",
				"GATEWAY_PORT":   "8443",
			},
			want: "base_url: https://llm-gateway.internal:8443/v1",
		},
		{
			name:  "missing variable expands to empty for validation to catch",
			input: "base_url: {{.NOT_SET_ANYWHERE}}",
			env:   map[string]string{},
			want:  "base_url: ",
		},
		{
			name:  "literal dollar signs survive",
			input: `base_url: "https://gw.example.com/v1?budget=$50"`,
			env:   map[string]string{},
			want:  `base_url: "https://gw.example.com/v1?budget=$50"`,
		},
		{
			name:  "shell-style ${VAR} is not template syntax",
			input: "model: ${MODEL_NAME}",
			env:   map[string]string{"MODEL_NAME": "gpt-4o"},
			want:  "model: ${MODEL_NAME}",
		},
		{
			name: "nested providers.yaml structure",
			input: "models:\n" +
				"  gpt-4o:\n" +
				"    api_key_env: {{.KEY_VAR}}\n" +
				"    base_url: {{.BASE_URL}}\n",
			env: map[string]string{
				"KEY_VAR":  "OPENAI_API_KEY",
				"BASE_URL": "https://api.openai.com/v1",
			},
			want: "models:\n" +
				"  gpt-4o:\n" +
				"    api_key_env: OPENAI_API_KEY\n" +
				"    base_url: https://api.openai.com/v1\n",
		},
		{
			name:  "plain YAML without references passes through unchanged",
			input: "defaults:\n  stream_buffer: 256\n",
			env:   map[string]string{"UNUSED": "x"},
			want:  "defaults:\n  stream_buffer: 256\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, string(ExpandEnv([]byte(tt.input))))
		})
	}
}

func TestExpandEnvMalformedTemplateReturnsOriginal(t *testing.T) {
	// Malformed template syntax must not destroy the config: the original
	// bytes pass through and the YAML parser reports position-aware errors.
	inputs := []string{
		"api_key_env: {{.UNCLOSED",
		"base_url: {{}}",
		"timeout: {{.BAD NAME}}",
		"models:\n  m:\n    base_url: {{undefinedfunc .X}}\n",
	}
	for _, input := range inputs {
		assert.Equal(t, input, string(ExpandEnv([]byte(input))), "input: %s", input)
	}
}

func TestExpandEnvOutputFeedsYAMLParser(t *testing.T) {
	t.Setenv("QUORUM_TEST_KEY_VAR", "ANTHROPIC_API_KEY")

	raw := `
models:
  claude-sonnet:
    provider: anthropic
    model: claude-sonnet-4
    api_key_env: "{{.QUORUM_TEST_KEY_VAR}}"
    priority: 8
`
	var parsed ProvidersYAMLConfig
	require.NoError(t, yaml.Unmarshal(ExpandEnv([]byte(raw)), &parsed))

	m, ok := parsed.Models["claude-sonnet"]
	require.True(t, ok)
	assert.Equal(t, "ANTHROPIC_API_KEY", m.APIKeyEnv)
	assert.Equal(t, 8, m.Priority)
}

func TestExpandEnvConcurrentUse(t *testing.T) {
	t.Setenv("QUORUM_CONCURRENT_VAR", "value")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := ExpandEnv([]byte("key: {{.QUORUM_CONCURRENT_VAR}}"))
			assert.Equal(t, "key: value", string(got))
		}()
	}
	wg.Wait()
}
