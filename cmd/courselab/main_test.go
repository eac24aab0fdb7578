package main

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLogging(t *testing.T) {
	defer logrus.SetLevel(logrus.GetLevel())

	require.NoError(t, configureLogging(&globalFlags{logLevel: "debug", logJSON: true}))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	assert.Error(t, configureLogging(&globalFlags{logLevel: "chatty"}))
}

func TestRootCommand_Subcommands(t *testing.T) {
	var out bytes.Buffer
	root := makeRootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"rivercrossing", "--log-level", "warn"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Solution 1 (7 crossings):")

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["editdistance"] && names["rivercrossing"] && names["convexhull"])
}
