package main

import (
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/font6x6"
	"github.com/bodgit/font6x6/db"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const (
	defaultDB      = "font6x6.db"
	defaultPreview = "Resources/6x6_font.png"
	envFile        = ".env"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(ioutil.Discard)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func newConverter(c *cli.Context) (*font6x6.Converter, error) {
	config := font6x6.DefaultConfig()
	config.Name = c.String("name")

	return font6x6.New(config, newLogger(c))
}

func generate(c *cli.Context) error {
	format, err := font6x6.ParseFormat(c.String("format"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	conv, err := newConverter(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	src, done, err := conv.Open(c.String("input"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer done()

	if err := conv.Convert(src, c.String("output"), format); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

func main() {
	// A missing .env is fine, the defaults apply
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		log.Fatal(err)
	}

	app := cli.NewApp()

	app.Name = "font6x6"
	app.Usage = "6x6 bitmap font to firmware header converter"
	app.Version = "1.0.0"

	inputFlag := &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		EnvVars: []string{"FONT6X6_INPUT"},
		Value:   font6x6.DefaultInput,
		Usage:   "font table to convert (.json, .db or glyph sheet image)",
	}

	nameFlag := &cli.StringFlag{
		Name:  "name",
		Value: font6x6.DefaultConfig().Name,
		Usage: "name of the generated array",
	}

	generateFlags := []cli.Flag{
		inputFlag,
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			EnvVars: []string{"FONT6X6_OUTPUT"},
			Value:   font6x6.DefaultOutput,
			Usage:   "file to write",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   font6x6.FormatHeader.String(),
			Usage:   "output format, c or bin",
		},
		nameFlag,
	}

	app.Flags = append([]cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"FONT6X6_DB"},
			Value:   defaultDB,
			Usage:   "path to glyph database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}, generateFlags...)

	app.Action = generate

	app.Commands = []*cli.Command{
		{
			Name:        "generate",
			Usage:       "Convert a font table into a header",
			Description: "",
			Flags:       generateFlags,
			Action:      generate,
		},
		{
			Name:        "import",
			Usage:       "Import a JSON font table into the glyph database",
			Description: "",
			ArgsUsage:   "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				g, err := db.New(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer g.Close()

				if err := g.ImportJSON(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				n, err := g.Length()
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				newLogger(c).Debugf("Imported %d glyphs into %s", n, c.String("db"))

				return nil
			},
		},
		{
			Name:        "preview",
			Usage:       "Render the encoded font as a glyph sheet image",
			Description: "",
			Flags: []cli.Flag{
				inputFlag,
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   defaultPreview,
					Usage:   "PNG file to write",
				},
				nameFlag,
			},
			Action: func(c *cli.Context) error {
				conv, err := newConverter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				src, done, err := conv.Open(c.String("input"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer done()

				if err := conv.Preview(src, c.String("output")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
