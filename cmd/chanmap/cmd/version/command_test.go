package version

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/chanmap/internal/appcontext"
)

func TestVersionText(t *testing.T) {
	cmd := NewCommand(&appcontext.Mock{VersionFunc: func() string { return "1.2.3" }})
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	assert.True(t, strings.HasPrefix(buf.String(), "chanmap version 1.2.3\n"))
	assert.Contains(t, buf.String(), "commit: unknown")
}

func TestVersionYAML(t *testing.T) {
	cmd := NewCommand(&appcontext.Mock{OutputFormatFunc: func() string { return "yaml" }})
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	var info Info
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &info))
	assert.Equal(t, "dev", info.Version)
	assert.Equal(t, "test", info.BuiltBy)
	assert.NotEmpty(t, info.GoVersion)
}
