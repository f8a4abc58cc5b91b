package main

import (
	"os"

	"github.com/bodgit/tftlayout"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"
)

const defaultLayout = "layout.json"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "tftlayout"
	app.Usage = "TFT screen layout compiler"
	app.Version = "1.1.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			EnvVars: []string{"TFTLAYOUT_CONFIG"},
			Value:   tftlayout.DefaultConfigPath(),
			Usage:   "path to configuration file",
		},
		&cli.StringFlag{
			Name:    "layout",
			Aliases: []string{"l"},
			EnvVars: []string{"TFTLAYOUT_LAYOUT"},
			Value:   defaultLayout,
			Usage:   "path to layout document",
		},
		&cli.BoolFlag{
			Name:  "skip-missing",
			Usage: "drop elements whose source image cannot be loaded instead of failing",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	generateFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    "mode",
			Aliases: []string{"m"},
			Usage:   "output mode, embedded or external",
		},
		&cli.BoolFlag{
			Name:    "transparency",
			Aliases: []string{"t"},
			Usage:   "replace transparent pixels with the color key",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "header file for embedded, directory for external",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:  "new",
			Usage: "Create an empty layout",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "width",
					Usage: "canvas width",
				},
				&cli.IntFlag{
					Name:  "height",
					Usage: "canvas height",
				},
				&cli.BoolFlag{
					Name:    "force",
					Aliases: []string{"f"},
					Usage:   "overwrite an existing layout",
				},
			},
			Action: newLayout,
		},
		{
			Name:      "import",
			Usage:     "Import images onto the canvas",
			ArgsUsage: "FILE|DIRECTORY...",
			Action:    importImages,
		},
		{
			Name:      "resize",
			Usage:     "Resize an element and center it",
			ArgsUsage: "NAME WIDTH HEIGHT",
			Action:    resizeElement,
		},
		{
			Name:      "move",
			Usage:     "Move an element",
			ArgsUsage: "NAME X Y",
			Action:    moveElement,
		},
		{
			Name:      "remove",
			Usage:     "Remove an element",
			ArgsUsage: "NAME",
			Action:    removeElement,
		},
		{
			Name:   "clear",
			Usage:  "Remove every element",
			Action: clearLayout,
		},
		{
			Name:      "canvas",
			Usage:     "Resize the canvas",
			ArgsUsage: "WIDTH HEIGHT",
			Action:    resizeCanvas,
		},
		{
			Name:   "list",
			Usage:  "List elements in canvas order",
			Action: listElements,
		},
		{
			Name:   "generate",
			Usage:  "Generate code or SD card files",
			Flags:  generateFlags,
			Action: generate,
		},
		{
			Name:   "watch",
			Usage:  "Generate again whenever the layout changes",
			Flags:  generateFlags,
			Action: watch,
		},
		{
			Name:      "inspect",
			Usage:     "Check the files of an external export",
			ArgsUsage: "DIRECTORY",
			Action:    inspect,
		},
		{
			Name:  "preview",
			Usage: "Render the canvas to a PNG file",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   "preview.png",
					Usage:   "output file",
				},
				&cli.BoolFlag{
					Name:  "display",
					Usage: "show colors as the display will draw them",
				},
				&cli.BoolFlag{
					Name:    "transparency",
					Aliases: []string{"t"},
					Usage:   "skip color keyed pixels with --display",
				},
			},
			Action: preview,
		},
		{
			Name:  "store",
			Usage: "Manage the layout library",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "db",
					EnvVars: []string{"TFTLAYOUT_DB"},
					Usage:   "path to library database",
				},
			},
			Subcommands: []*cli.Command{
				{
					Name:      "put",
					Usage:     "Store the layout under a name",
					ArgsUsage: "NAME",
					Action:    storePut,
				},
				{
					Name:      "get",
					Usage:     "Restore a stored layout",
					ArgsUsage: "NAME",
					Action:    storeGet,
				},
				{
					Name:   "list",
					Usage:  "List stored layouts",
					Action: storeList,
				},
				{
					Name:      "delete",
					Usage:     "Delete a stored layout",
					ArgsUsage: "NAME",
					Action:    storeDelete,
				},
			},
		},
		{
			Name:  "config",
			Usage: "Write the current settings to the configuration file",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    "force",
					Aliases: []string{"f"},
					Usage:   "overwrite an existing file",
				},
			},
			Action: writeConfig,
		},
		{
			Name:      "schema",
			Usage:     "Print the JSON schema of a document",
			ArgsUsage: "layout|manifest",
			Action:    schema,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
