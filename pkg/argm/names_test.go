package argm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvName(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		param    string
		override *Override
		expected string
	}{
		{name: "no prefix", param: "arg1", expected: "ARG1"},
		{name: "prefix", prefix: "prefix", param: "arg1", expected: "PREFIX_ARG1"},
		{name: "prefix with trailing underscore", prefix: "MYAPP_", param: "timeout", expected: "MYAPP_TIMEOUT"},
		{name: "mixed case param", prefix: "App", param: "serverUrl", expected: "APP_SERVERURL"},
		{name: "env name ignores prefix", prefix: "prefix", param: "arg1", override: &Override{EnvName: "env1"}, expected: "ENV1"},
		{name: "alt name ignores prefix", prefix: "prefix", param: "arg1", override: &Override{AltName: "alt"}, expected: "ALT"},
		{name: "env name beats alt name", param: "arg1", override: &Override{AltName: "alt", EnvName: "ENV1"}, expected: "ENV1"},
		{name: "empty override", prefix: "p", param: "arg1", override: &Override{}, expected: "P_ARG1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EnvName(tt.prefix, tt.param, tt.override))
		})
	}
}

func TestConfigName(t *testing.T) {
	assert.Equal(t, "arg1", ConfigName("arg1", nil))
	assert.Equal(t, "serverURL", ConfigName("serverURL", &Override{}), "case preserved")
	assert.Equal(t, "alt", ConfigName("arg1", &Override{AltName: "alt"}))
	assert.Equal(t, "arg1", ConfigName("arg1", &Override{EnvName: "ENV1"}), "env name does not rename config key")
}

func TestAttrName(t *testing.T) {
	assert.Equal(t, "_arg1", AttrName("arg1", nil, true))
	assert.Equal(t, "arg1", AttrName("arg1", nil, false))
	assert.Equal(t, "_arg1", AttrName("_arg1", nil, true), "no double prefix")
	assert.Equal(t, "custom", AttrName("arg1", &Override{Attr: "custom"}, true))
}

func TestResultKey(t *testing.T) {
	assert.Equal(t, "arg1", ResultKey("arg1", nil))
	assert.Equal(t, "arg1", ResultKey("arg1", &Override{AltName: "alt"}), "alias does not rename the result")
	assert.Equal(t, "renamed", ResultKey("arg1", &Override{Key: "renamed"}))
}
