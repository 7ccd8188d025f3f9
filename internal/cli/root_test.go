package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/chonker8/harness/internal/app"
	"github.com/chonker8/harness/internal/domain"
	"github.com/chonker8/harness/internal/infra/inspect"
	"github.com/chonker8/harness/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestContainer builds a container with mocks for CLI tests.
func newTestContainer(runner *testutil.MockProcessRunner, downloader *testutil.MockDownloader, emitter *testutil.MockEmitter) *app.Container {
	return app.NewWithDeps(
		domain.NewDefaultConfig(),
		runner,
		downloader,
		inspect.NewScanner(),
		emitter,
		testutil.NopLogger{},
	)
}

// execute runs the root command with args and returns stdout/stderr.
func execute(t *testing.T, c *app.Container, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand(c, "test")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestNewRootCommand_RegistersCommands(t *testing.T) {
	root := NewRootCommand(newTestContainer(testutil.NewMockProcessRunner(), &testutil.MockDownloader{}, &testutil.MockEmitter{}), "1.2.3")

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}

	for _, want := range []string{"probe", "tables", "models", "display", "scan", "show", "init"} {
		assert.Contains(t, names, want)
	}
	assert.Equal(t, "1.2.3", root.Version)
}

func TestProbeCommand(t *testing.T) {
	pdf := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF"), 0o644))

	runner := testutil.NewMockProcessRunner()
	runner.Result = &domain.CommandResult{
		Stderr: "[VELLO] Successfully decoded image\nDetection: has_tables=true\n",
	}
	c := newTestContainer(runner, &testutil.MockDownloader{}, &testutil.MockEmitter{})

	out, _, err := execute(t, c, "probe", pdf)

	require.NoError(t, err)
	assert.Contains(t, out, "image decoded")
	assert.Contains(t, out, "tables detected")
	assert.Contains(t, out, "[VELLO] Successfully decoded image")
}

func TestProbeCommand_MissingDocument(t *testing.T) {
	c := newTestContainer(testutil.NewMockProcessRunner(), &testutil.MockDownloader{}, &testutil.MockEmitter{})

	_, _, err := execute(t, c, "probe", "/absent/doc.pdf")

	assert.ErrorIs(t, err, domain.ErrDocumentMissing)
}

func TestScanCommand_File(t *testing.T) {
	log := filepath.Join(t.TempDir(), "stderr.log")
	require.NoError(t, os.WriteFile(log, []byte("[VELLO] Successfully decoded image\n"), 0o644))

	c := newTestContainer(testutil.NewMockProcessRunner(), &testutil.MockDownloader{}, &testutil.MockEmitter{})

	out, _, err := execute(t, c, "scan", log)

	require.NoError(t, err)
	assert.Contains(t, out, domain.LabelDecodeOK)
	assert.Contains(t, out, "tables_detected not detected")
}

func TestScanCommand_CustomRules(t *testing.T) {
	dir := t.TempDir()
	log := filepath.Join(dir, "out.log")
	rules := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(log, []byte("stage ocr done\n"), 0o644))
	require.NoError(t, os.WriteFile(rules, []byte("rules:\n  - label: ocr_done\n    pattern: stage ocr done\n"), 0o644))

	c := newTestContainer(testutil.NewMockProcessRunner(), &testutil.MockDownloader{}, &testutil.MockEmitter{})

	out, _, err := execute(t, c, "scan", log, "--rules", rules)

	require.NoError(t, err)
	assert.Contains(t, out, "ocr_done")
}

func TestDisplayCommand(t *testing.T) {
	img := filepath.Join(t.TempDir(), "render.png")
	require.NoError(t, os.WriteFile(img, []byte("png bytes"), 0o644))

	emitter := &testutil.MockEmitter{Payload: "\x1b_Ga=T,f=100;AA==\x1b\\"}
	c := newTestContainer(testutil.NewMockProcessRunner(), &testutil.MockDownloader{}, emitter)

	out, errOut, err := execute(t, c, "display", img, "--direct", "--width", "400", "--height", "500")

	require.NoError(t, err)
	assert.Contains(t, out, "\x1b_G")
	assert.Contains(t, errOut, "emitted")

	require.Len(t, emitter.Frames, 1)
	assert.Equal(t, domain.PlacementDirect, emitter.Frames[0].Placement)
	assert.Equal(t, 400, emitter.Frames[0].Width)
	assert.Equal(t, 500, emitter.Frames[0].Height)
}

func TestDisplayCommand_MissingImage(t *testing.T) {
	c := newTestContainer(testutil.NewMockProcessRunner(), &testutil.MockDownloader{}, &testutil.MockEmitter{})

	_, _, err := execute(t, c, "display", "/absent/render.png")

	assert.ErrorIs(t, err, domain.ErrImageNotFound)
}

func TestModelsFetchCommand(t *testing.T) {
	downloader := &testutil.MockDownloader{Content: []byte("onnx")}
	c := newTestContainer(testutil.NewMockProcessRunner(), downloader, &testutil.MockEmitter{})

	out, _, err := execute(t, c, "models", "fetch", "--dir", t.TempDir())

	require.NoError(t, err)
	assert.Contains(t, out, "decoder saved to")
	assert.Contains(t, out, "encoder saved to")
	assert.Len(t, downloader.Tasks, 2)
}

func TestModelsFetchCommand_FailurePrintsRemediation(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	downloader := &testutil.MockDownloader{FailURL: cfg.Models.DecoderURL}
	c := newTestContainer(testutil.NewMockProcessRunner(), downloader, &testutil.MockEmitter{})

	_, errOut, err := execute(t, c, "models", "fetch", "--dir", t.TempDir())

	assert.Error(t, err)
	assert.Contains(t, errOut, "huggingface.co/Xenova/trocr-small-printed")
	assert.Contains(t, errOut, "transformers.onnx")
}

func TestTablesCommand(t *testing.T) {
	pdf := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF"), 0o644))

	runner := testutil.NewMockProcessRunner()
	runner.Result = &domain.CommandResult{Stderr: "Detection: has_tables=true, method=LayoutAnalysis\n"}
	c := newTestContainer(runner, &testutil.MockDownloader{}, &testutil.MockEmitter{})

	out, _, err := execute(t, c, "tables", pdf)

	require.NoError(t, err)
	assert.Contains(t, out, pdf)
	assert.Contains(t, out, "has_tables=true")
}

func TestShowCommand(t *testing.T) {
	workDir := t.TempDir()
	t.Chdir(workDir)

	pdf := filepath.Join(workDir, "doc.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF"), 0o644))

	cfg := domain.NewDefaultConfig()
	require.NoError(t, os.WriteFile(filepath.Join(workDir, cfg.Renderer.Artifact), []byte("png"), 0o644))

	runner := testutil.NewMockProcessRunner()
	runner.Result = &domain.CommandResult{Stderr: "[VELLO] Successfully decoded image\n"}
	emitter := &testutil.MockEmitter{Payload: "\x1b_Ga=T,f=100;AA==\x1b\\"}
	c := newTestContainer(runner, &testutil.MockDownloader{}, emitter)

	out, errOut, err := execute(t, c, "show", pdf)

	require.NoError(t, err)
	assert.Contains(t, out, "\x1b_G")
	assert.Contains(t, errOut, "rendered and displayed")
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	c := newTestContainer(testutil.NewMockProcessRunner(), &testutil.MockDownloader{}, &testutil.MockEmitter{})

	out, _, err := execute(t, c, "init")

	require.NoError(t, err)
	assert.Contains(t, out, domain.ConfigFileName)
	assert.FileExists(t, filepath.Join(dir, domain.ConfigFileName))
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(""), 0o644))

	c := newTestContainer(testutil.NewMockProcessRunner(), &testutil.MockDownloader{}, &testutil.MockEmitter{})

	_, _, err := execute(t, c, "init")

	assert.ErrorIs(t, err, domain.ErrConfigExists)
}
