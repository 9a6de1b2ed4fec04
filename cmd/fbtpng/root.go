package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gogpu/fbtpng"
	"github.com/gogpu/fbtpng/internal/config"
	"github.com/gogpu/fbtpng/text"
)

// cli holds the state shared by the commands of one invocation.
type cli struct {
	outW, errW io.Writer

	configPath string
	flags      config.Config // flag values, applied only when set
	cfg        config.Config // resolved configuration
}

func newRootCmd(outW, errW io.Writer) *cobra.Command {
	c := &cli{outW: outW, errW: errW, flags: config.Default()}

	root := &cobra.Command{
		Use:   "fbtpng [INPUT_DIR]",
		Short: "Render IEC 61499 function block interfaces as PNG diagrams",
		Long: `Convert every function block type file (.fbt) of a directory into an
800x600 PNG diagram of its interface.

Without INPUT_DIR the directories ../xml, ./xml, xml and . are searched and
the first one holding .fbt files is used.

Examples:
  fbtpng                                  # search the default directories
  fbtpng models/xml -o out                # convert models/xml into out/
  fbtpng --config fbtpng.hcl --workers 8  # settings from an HCL file
  fbtpng inspect xml/E_DELAY.fbt          # print the parsed block`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.resolve,
		RunE:              c.runConvert,
	}
	root.SetOut(outW)
	root.SetErr(errW)

	pf := root.PersistentFlags()
	pf.StringVarP(&c.configPath, "config", "c", "", "path to an HCL configuration file")
	pf.StringSliceVar(&c.flags.FontPaths, "font", nil, "font file to try, may be repeated (default: system fonts)")
	pf.BoolVar(&c.flags.GoFontFallback, "go-font", false, "fall back to the embedded Go font when no font loads")
	pf.StringVar(&c.flags.LogLevel, "log-level", c.flags.LogLevel, "log level: debug, info, warn or error")
	pf.StringVar(&c.flags.LogFormat, "log-format", c.flags.LogFormat, "log format: text or json")

	f := root.Flags()
	f.StringVarP(&c.flags.InputDir, "input-dir", "i", "", "directory holding the block files")
	f.StringVarP(&c.flags.OutputDir, "output-dir", "o", c.flags.OutputDir, "directory for the PNG files")
	f.StringVar(&c.flags.Extension, "ext", c.flags.Extension, "extension of block files, matched case-insensitively")
	f.IntVarP(&c.flags.Workers, "workers", "w", c.flags.Workers, "number of files converted in parallel")

	root.AddCommand(newInspectCmd(c))
	return root
}

// resolve builds the configuration from defaults, the optional config file
// and the flags set on the command line, in increasing precedence, and
// installs the logger.
func (c *cli) resolve(cmd *cobra.Command, args []string) error {
	c.cfg = config.Default()
	if c.configPath != "" {
		f, err := config.Load(c.configPath)
		if err != nil {
			return &ExitError{Code: 2, Message: err.Error()}
		}
		c.cfg.Apply(f)
	}

	cmd.Flags().Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "input-dir":
			c.cfg.InputDir = c.flags.InputDir
		case "output-dir":
			c.cfg.OutputDir = c.flags.OutputDir
		case "ext":
			c.cfg.Extension = c.flags.Extension
		case "workers":
			c.cfg.Workers = c.flags.Workers
		case "font":
			c.cfg.FontPaths = c.flags.FontPaths
		case "go-font":
			c.cfg.GoFontFallback = c.flags.GoFontFallback
		case "log-level":
			c.cfg.LogLevel = c.flags.LogLevel
		case "log-format":
			c.cfg.LogFormat = c.flags.LogFormat
		}
	})
	if cmd == cmd.Root() && len(args) == 1 {
		c.cfg.InputDir = args[0]
	}

	if err := c.cfg.Validate(); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	fbtpng.SetLogger(newLogger(c.cfg.LogLevel, c.cfg.LogFormat, c.errW))
	fbtpng.Logger().Debug("configuration resolved", "config", fmt.Sprintf("%+v", c.cfg))
	return nil
}

// fontPaths returns the font files to try.
func (c *cli) fontPaths() []string {
	if len(c.cfg.FontPaths) > 0 {
		return c.cfg.FontPaths
	}
	return text.DefaultFontPaths
}
