package main

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/sketch/config"
)

const testConfig = `
tool = "rect"

[canvas]
width = 160
height = 120
background = "#000"
`

const testScript = `
steps:
  - drag: [[20, 20], [100, 80]]
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func decodeSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

// pngSize returns the size of the PNG at path, or zero if it cannot be read.
func pngSize(path string) [2]int {
	f, err := os.Open(path)
	if err != nil {
		return [2]int{}
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		return [2]int{}
	}
	return [2]int{cfg.Width, cfg.Height}
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	o := options{
		configPath: writeFile(t, dir, "sketch.toml", testConfig),
		scriptPath: writeFile(t, dir, "steps.yaml", testScript),
		output:     filepath.Join(dir, "out.png"),
	}
	require.NoError(t, render(o))

	w, h := decodeSize(t, o.output)
	assert.Equal(t, 160, w)
	assert.Equal(t, 120, h)
}

func TestRender_Defaults(t *testing.T) {
	o := options{output: filepath.Join(t.TempDir(), "out.png"), status: true}
	require.NoError(t, render(o))

	w, h := decodeSize(t, o.output)
	def := config.Default()
	assert.Equal(t, def.Canvas.Width, w)
	assert.Equal(t, def.Canvas.Height, h)
}

func TestRender_Errors(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.png")

	bad := writeFile(t, dir, "bad.toml", "[canvas]\nwidth = -1\n")
	assert.ErrorIs(t, render(options{configPath: bad, output: out}), config.ErrInvalid)

	badScript := writeFile(t, dir, "bad.yaml", "steps:\n  - key: f13\n")
	assert.Error(t, render(options{scriptPath: badScript, output: out}))

	assert.ErrorIs(t, render(options{configPath: filepath.Join(dir, "missing.toml"), output: out}), os.ErrNotExist)
	assert.NoFileExists(t, out)
}

func TestWatch_RerendersOnChange(t *testing.T) {
	dir := t.TempDir()
	o := options{
		configPath: writeFile(t, dir, "sketch.toml", testConfig),
		scriptPath: writeFile(t, dir, "steps.yaml", testScript),
		output:     filepath.Join(dir, "out.png"),
	}

	ctx, cancel := context.WithCancel(context.Background())
	results := make(chan error, 16)
	stopped := make(chan error, 1)
	go func() {
		stopped <- watch(ctx, o, func(err error) {
			select {
			case results <- err:
			default:
			}
		})
	}()

	// give the watcher time to register before touching the files
	time.Sleep(200 * time.Millisecond)
	writeFile(t, dir, "sketch.toml", "[canvas]\nwidth = 64\nheight = 48\n")

	// a save may arrive as several events; wait for a render of the final content
	deadline := time.After(5 * time.Second)
	for resized := false; !resized; {
		select {
		case err := <-results:
			if err != nil {
				continue
			}
			resized = pngSize(o.output) == [2]int{64, 48}
		case <-deadline:
			t.Fatal("no re-render after config change")
		}
	}

	cancel()
	select {
	case err := <-stopped:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not return after cancel")
	}
}

func TestWatch_NothingToWatch(t *testing.T) {
	err := watch(context.Background(), options{output: "x.png"}, func(error) {})
	assert.Error(t, err)
}
