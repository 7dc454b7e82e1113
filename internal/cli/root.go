package cli

import (
	"io"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/example/docmaker/internal/config"
	"github.com/example/docmaker/internal/logging"
	"github.com/example/docmaker/internal/logging/logfields"
	"github.com/example/docmaker/internal/version"
)

// app holds state shared by all commands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *logrus.Logger
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
}

// flagKeys maps persistent flags to their configuration keys.
var flagKeys = map[string]string{
	"debug":        config.KeyDebug,
	"no-color":     config.KeyNoColor,
	"output-dir":   config.KeyOutputDir,
	"namespace":    config.KeyNamespace,
	"strict-types": config.KeyStrictTypes,
	"log-format":   config.KeyLogFormat,
}

// NewRootCmd returns the docmaker command tree reading answers from in and
// writing to out and errOut.
func NewRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:     "docmaker",
		Short:   "Generate Doctrine MongoDB ODM document classes",
		Version: version.String(),
		Long: `docmaker generates the PHP class of a Doctrine MongoDB ODM document
from a collection name, an embedding flag and a list of fields.

Fields are either scalar fields with a Doctrine mapping type or embedded
relations (embed one, embed many) to another document.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.docmaker.yaml)")
	flags.BoolP("debug", "D", false, "Enable debug messages")
	flags.Bool("no-color", false, "Disable colored output")
	flags.String("output-dir", "", "Directory generated classes are written to (default is the docmaker executable's directory)")
	flags.String("namespace", `App\Document`, "PHP namespace of generated classes")
	flags.Bool("strict-types", true, "Reject field types that are not Doctrine mapping types")
	flags.String("log-format", string(logging.DefaultLogFormat), "Log format (text, json)")

	config.SetDefaults(a.v)
	bindFlags(a.v, flags)

	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newGenerateDocumentCmd(a, "generate:document", true))
	root.AddCommand(newTypesCmd(a))

	return root
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	for name, key := range flagKeys {
		// Lookup cannot fail for flags registered above.
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
}

// init reads the configuration and sets up logging and colors.
func (a *app) init() error {
	used, err := config.ReadInConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log = logging.New(a.errOut, cfg.LogFormat, cfg.Debug)
	if cfg.NoColor {
		color.NoColor = true
	}
	if used != "" {
		a.log.WithField(logfields.ConfigFile, used).Debug("Using config file")
	}
	return nil
}
