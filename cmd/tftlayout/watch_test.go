package main

import (
	"context"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bodgit/tftlayout"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "a.png"), 20, 10, color.NRGBA{0xff, 0xff, 0, 0xff})

	layout := filepath.Join(dir, "layout.json")
	compiler := tftlayout.New(nil, nil)
	el, err := compiler.ImportElement(filepath.Join(dir, "a.png"))
	require.Nil(t, err)
	require.Nil(t, tftlayout.WriteDocument(layout, compiler.SaveLayout()))

	// The header lands next to the layout, so its own writes must not
	// trigger another run
	output := filepath.Join(dir, "layout.h")
	e := &env{
		cfg:    tftlayout.DefaultConfig(),
		logger: log.New(io.Discard),
		layout: layout,
		w:      io.Discard,
	}
	opts := &generateOptions{mode: tftlayout.Embedded, output: output}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- e.watch(ctx, opts)
	}()

	contains := func(s string) func() bool {
		return func() bool {
			b, err := os.ReadFile(output)
			return err == nil && strings.Contains(string(b), s)
		}
	}

	assert.Eventually(t, contains("tft.pushImage(10, 10, 20, 10, img_1_a_png_data);"), 5*time.Second, 20*time.Millisecond)

	_, err = compiler.MoveElement(el.ID, 3, 4)
	require.Nil(t, err)
	require.Nil(t, tftlayout.WriteDocument(layout, compiler.SaveLayout()))

	assert.Eventually(t, contains("tft.pushImage(3, 4, 20, 10, img_1_a_png_data);"), 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.Nil(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
