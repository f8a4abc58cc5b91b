package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bodgit/tftlayout"
	"github.com/bodgit/tftlayout/manifest"
	"github.com/bodgit/tftlayout/rgb565"
	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/urfave/cli/v2"
)

type env struct {
	cfg         *tftlayout.Config
	logger      *log.Logger
	layout      string
	skipMissing bool
	w           io.Writer
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: verbose,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func setup(c *cli.Context) (*env, error) {
	logger := newLogger(c.App.ErrWriter, c.Bool("verbose"))

	cfg, err := tftlayout.LoadConfig(c.String("config"))
	if err != nil {
		return nil, cli.Exit(err, 1)
	}

	return &env{
		cfg:         cfg,
		logger:      logger,
		layout:      c.String("layout"),
		skipMissing: c.Bool("skip-missing"),
		w:           c.App.Writer,
	}, nil
}

func (e *env) printf(key string, args ...interface{}) {
	fmt.Fprintln(e.w, message(e.cfg.Language, key, args...))
}

// open loads the layout document, or starts an empty canvas if there is none
// yet. With strict set, any element that cannot be restored fails the load
// unless --skip-missing was given, so nothing is generated or saved without
// it.
func (e *env) open(strict bool) (*tftlayout.Compiler, error) {
	compiler := tftlayout.New(e.cfg, e.logger)

	doc, err := tftlayout.ReadDocument(e.layout)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return compiler, nil
		}
		return nil, err
	}

	if err := e.load(compiler, doc, strict); err != nil {
		return nil, err
	}

	return compiler, nil
}

func (e *env) load(compiler *tftlayout.Compiler, doc *tftlayout.Document, strict bool) error {
	warnings, err := compiler.LoadLayout(doc)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		e.printf("skipped", w)
	}

	if len(warnings) > 0 && strict && !e.skipMissing {
		return &tftlayout.Error{
			Kind: tftlayout.ErrImage,
			Op:   "load",
			Path: warnings[0].Path,
			Err:  errors.New(message(e.cfg.Language, "missing_elements", len(warnings))),
		}
	}

	return nil
}

func (e *env) save(compiler *tftlayout.Compiler) error {
	if err := tftlayout.WriteDocument(e.layout, compiler.SaveLayout()); err != nil {
		return err
	}
	e.logger.Debug("Saved layout", "path", e.layout)
	return nil
}

// edit runs fn against the layout and saves the result.
func edit(c *cli.Context, args int, fn func(*env, *tftlayout.Compiler) error) error {
	if c.NArg() < args {
		cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
	}

	e, err := setup(c)
	if err != nil {
		return err
	}

	compiler, err := e.open(true)
	if err != nil {
		return cli.Exit(err, 1)
	}

	if err := fn(e, compiler); err != nil {
		return cli.Exit(err, 1)
	}

	if err := e.save(compiler); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func intArgs(c *cli.Context, from int) ([]int, error) {
	var out []int
	for _, s := range c.Args().Slice()[from:] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, &tftlayout.Error{Kind: tftlayout.ErrValidation, Op: c.Command.Name, Err: fmt.Errorf("%q is not an integer", s)}
		}
		out = append(out, n)
	}
	return out, nil
}

func lookup(compiler *tftlayout.Compiler, name string) (tftlayout.Element, error) {
	el, ok := compiler.Canvas().Lookup(name)
	if !ok {
		return el, &tftlayout.Error{Kind: tftlayout.ErrNotFound, Op: "lookup", Err: fmt.Errorf("no element called %s", name)}
	}
	return el, nil
}

func newLayout(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}

	if _, err := os.Stat(e.layout); err == nil && !c.Bool("force") {
		return cli.Exit(fmt.Sprintf("%s already exists", e.layout), 1)
	}

	compiler := tftlayout.New(e.cfg, e.logger)
	if c.IsSet("width") || c.IsSet("height") {
		w, h := compiler.Canvas().Width, compiler.Canvas().Height
		if c.IsSet("width") {
			w = c.Int("width")
		}
		if c.IsSet("height") {
			h = c.Int("height")
		}
		if err := compiler.ResizeCanvas(w, h); err != nil {
			return cli.Exit(err, 1)
		}
	}

	if err := e.save(compiler); err != nil {
		return cli.Exit(err, 1)
	}
	e.printf("created", e.layout, compiler.Canvas().Width, compiler.Canvas().Height)

	return nil
}

func importImages(c *cli.Context) error {
	return edit(c, 1, func(e *env, compiler *tftlayout.Compiler) error {
		for _, path := range c.Args().Slice() {
			info, err := os.Stat(path)
			if err != nil {
				return &tftlayout.Error{Kind: tftlayout.ErrImage, Op: "import", Path: path, Err: err}
			}

			if info.IsDir() {
				elements, err := compiler.ImportDir(path)
				for _, el := range elements {
					e.printf("imported", el.Name, el.W, el.H)
				}
				if err != nil {
					return err
				}
				continue
			}

			el, err := compiler.ImportElement(path)
			if err != nil {
				return err
			}
			e.printf("imported", el.Name, el.W, el.H)
		}
		return nil
	})
}

func resizeElement(c *cli.Context) error {
	return edit(c, 3, func(e *env, compiler *tftlayout.Compiler) error {
		el, err := lookup(compiler, c.Args().First())
		if err != nil {
			return err
		}
		n, err := intArgs(c, 1)
		if err != nil {
			return err
		}
		_, err = compiler.ResizeElement(el.ID, n[0], n[1])
		return err
	})
}

func moveElement(c *cli.Context) error {
	return edit(c, 3, func(e *env, compiler *tftlayout.Compiler) error {
		el, err := lookup(compiler, c.Args().First())
		if err != nil {
			return err
		}
		n, err := intArgs(c, 1)
		if err != nil {
			return err
		}
		_, err = compiler.MoveElement(el.ID, n[0], n[1])
		return err
	})
}

func removeElement(c *cli.Context) error {
	return edit(c, 1, func(e *env, compiler *tftlayout.Compiler) error {
		el, err := lookup(compiler, c.Args().First())
		if err != nil {
			return err
		}
		if err := compiler.RemoveElement(el.ID); err != nil {
			return err
		}
		e.printf("removed", el.Name)
		return nil
	})
}

func clearLayout(c *cli.Context) error {
	return edit(c, 0, func(e *env, compiler *tftlayout.Compiler) error {
		compiler.Clear()
		e.printf("cleared")
		return nil
	})
}

func resizeCanvas(c *cli.Context) error {
	return edit(c, 2, func(e *env, compiler *tftlayout.Compiler) error {
		n, err := intArgs(c, 0)
		if err != nil {
			return err
		}
		return compiler.ResizeCanvas(n[0], n[1])
	})
}

func listElements(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}

	compiler, err := e.open(false)
	if err != nil {
		return cli.Exit(err, 1)
	}

	fmt.Fprintf(e.w, "canvas %dx%d\n", compiler.Canvas().Width, compiler.Canvas().Height)
	for i, el := range compiler.Canvas().Elements() {
		role := "icon"
		if i == 0 {
			role = "background"
		}
		fmt.Fprintf(e.w, "%d\t%s\t%d,%d\t%dx%d\t%s\t%s\n", i, el.Name, el.X, el.Y, el.W, el.H, role, el.Path)
	}

	return nil
}

type generateOptions struct {
	mode        tftlayout.Mode
	transparent bool
	output      string
}

func parseGenerateOptions(c *cli.Context, cfg *tftlayout.Config) (*generateOptions, error) {
	mode := cfg.Generate.Mode
	if c.IsSet("mode") {
		mode = c.String("mode")
	}
	m, err := tftlayout.ParseMode(mode)
	if err != nil {
		return nil, err
	}

	opts := &generateOptions{
		mode:        m,
		transparent: cfg.Generate.Transparency,
		output:      c.String("output"),
	}
	if c.IsSet("transparency") {
		opts.transparent = c.Bool("transparency")
	}
	if opts.mode == tftlayout.External && opts.output == "" {
		opts.output = cfg.Generate.OutputDir
	}

	return opts, nil
}

func (e *env) generate(compiler *tftlayout.Compiler, opts *generateOptions) error {
	if compiler.Canvas().Len() == 0 {
		return errors.New(message(e.cfg.Language, "no_elements"))
	}

	if opts.mode == tftlayout.External {
		if err := os.MkdirAll(opts.output, 0755); err != nil {
			return &tftlayout.Error{Kind: tftlayout.ErrIO, Op: "generate", Path: opts.output, Err: err}
		}
	}

	artifact, err := compiler.Generate(opts.mode, opts.transparent, opts.output)
	if err != nil {
		return err
	}

	switch {
	case artifact.Mode == tftlayout.External:
		e.printf("files_written", artifact.Dir)
	case opts.output == "" || opts.output == "-":
		fmt.Fprint(e.w, artifact.Source)
	default:
		if err := os.WriteFile(opts.output, []byte(artifact.Source), 0644); err != nil {
			return &tftlayout.Error{Kind: tftlayout.ErrIO, Op: "generate", Path: opts.output, Err: err}
		}
		e.printf("code_written", opts.output)
	}

	return nil
}

func generate(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}

	opts, err := parseGenerateOptions(c, e.cfg)
	if err != nil {
		return cli.Exit(err, 1)
	}

	compiler, err := e.open(true)
	if err != nil {
		return cli.Exit(err, 1)
	}

	if err := e.generate(compiler, opts); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func inspect(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
	}

	e, err := setup(c)
	if err != nil {
		return err
	}

	dir := c.Args().First()
	m, err := manifest.Read(dir)
	if err != nil {
		return cli.Exit(&tftlayout.Error{Kind: tftlayout.ErrFormat, Op: "inspect", Path: filepath.Join(dir, manifest.Filename), Err: err}, 1)
	}

	entries := m.Entries()
	bad := 0
	for i, entry := range entries {
		role := "icon"
		if i == 0 {
			role = "background"
		}
		fmt.Fprintf(e.w, "%s\t%s\t%d,%d\t%dx%d\ttransparent=%t\n", role, entry.File, entry.X, entry.Y, entry.W, entry.H, entry.Transparent)

		info, err := os.Stat(filepath.Join(dir, entry.File))
		if err != nil {
			return cli.Exit(&tftlayout.Error{Kind: tftlayout.ErrIO, Op: "inspect", Path: entry.File, Err: err}, 1)
		}
		if want := rgb565.EncodedSize(entry.W, entry.H); info.Size() != want {
			e.printf("size_mismatch", entry.File, info.Size(), want)
			bad++
		}
	}

	if bad > 0 {
		return cli.Exit("", 1)
	}
	e.printf("verified", len(entries), dir)

	return nil
}

func preview(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}

	compiler, err := e.open(false)
	if err != nil {
		return cli.Exit(err, 1)
	}

	m, err := compiler.Preview(c.Bool("display"), c.Bool("transparency"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	output := c.String("output")
	if err := imaging.Save(m, output); err != nil {
		return cli.Exit(&tftlayout.Error{Kind: tftlayout.ErrIO, Op: "preview", Path: output, Err: err}, 1)
	}
	e.printf("preview", output)

	return nil
}

func writeConfig(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}

	path := c.String("config")
	if _, err := os.Stat(path); err == nil && !c.Bool("force") {
		return cli.Exit(fmt.Sprintf("%s already exists", path), 1)
	}

	if err := e.cfg.Save(path); err != nil {
		return cli.Exit(err, 1)
	}
	e.printf("config_written", path)

	return nil
}

func schema(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
	}

	b, err := tftlayout.Schema(c.Args().First())
	if err != nil {
		return cli.Exit(err, 1)
	}
	fmt.Fprintln(c.App.Writer, string(b))

	return nil
}
