package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/formsmith/internal/infrastructure/logging"
)

func newTestApp() *AppContext {
	app := newAppContext()
	app.Logger = logging.NewNoOpLogger()
	app.IsTerminal = func(*cobra.Command) bool { return false }
	return app
}

func executeCommand(app *AppContext, args ...string) (string, error) {
	root := newRootCmd(app)
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const surveyRecipe = `name: Survey
questions:
  - template: q1
    alias: name
  - template: q3
    alias: color
    style:
      bold: true
    options:
      opt2:
        font_color: "#0000ff"
  - template: q7
sections:
  - title: About you
    questions: [name, color]
    style:
      flex_direction: row
select: color
`

const customCatalog = `questions:
  - id: nps
    text: How likely are you to recommend us?
    type: dropdown
    options:
      - id: low
        text: Unlikely
      - id: high
        text: Likely
  - id: notes
    text: Anything else?
    type: text
`
