package root_test

import (
	"testing"

	"ledgerlens/extractcore/cmd/root"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestRootCommandMetadata(t *testing.T) {
	assert.Equal(t, "extractcore", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "bank statement PDFs")
	assert.Contains(t, root.Cmd.Long, "three-tier cascading extraction pipeline")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestRootCommandRunDoesNotPanic(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.AddCommand(&cobra.Command{Use: "help"})
	assert.NotPanics(t, func() {
		root.Cmd.Run(cmd, []string{})
	})
}

func TestGetContainerBeforePersistentPreRunIsNil(t *testing.T) {
	assert.Nil(t, root.GetContainer())
}

func TestGlobalLoggerIsInitialized(t *testing.T) {
	assert.NotNil(t, root.Log)
}

func TestRootCommandHelpText(t *testing.T) {
	assert.NotEmpty(t, root.Cmd.Use)
	assert.NotEmpty(t, root.Cmd.Short)
	assert.NotEmpty(t, root.Cmd.Long)
}
