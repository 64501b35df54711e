package main

import (
	"context"
	"fmt"
	"io"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/massn/envordot"

	"github.com/oqtopus-team/oqtopus-qae/core"
	"github.com/oqtopus-team/oqtopus-qae/emitter"
	"github.com/oqtopus-team/oqtopus-qae/log"

	"go.uber.org/zap"
)

var versionByBuildFlag string
var parser *flags.Parser
var qae *QAE

func init() {
	if err := envordot.Load(false, ".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Not found \".env\" file. Use only environment variables. Reason:%s\n", err.Error())
	}
	qae = &QAE{}
	setParser(qae)
}

type QAE struct {
	Conf *core.Conf
}

func setParser(q *QAE) {
	parser = flags.NewParser(q, flags.Default)
	parser.ShortDescription = "qae"
	parser.LongDescription = "generator of quantum autoencoder circuits."
	parser.AddCommand("build", "build a circuit", "build the autoencoder circuit described by a setting file", newBuildCmd())
	parser.AddCommand("demo", "build the demo circuit", "build the 7 qubit demo autoencoder", newDemoCmd())
	parser.AddCommand("version", "show version", "show version", &versionCmd{})
}

// parse exits with the code of exitCode. flags.Default already prints the
// error, or the help text, so nothing is printed here.
func parse() {
	if _, err := parser.Parse(); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
		return 0
	}
	return 1
}

func main() {
	parse()
}

type buildCmd struct {
	SettingPath string `long:"setting" short:"s" description:"circuit setting file, json when it ends with .json and toml otherwise" required:"true" env:"QAE_SETTING_PATH"`
	LegacyCRZ   bool   `long:"legacy-crz" description:"emit CRX for Z axis controlled rotations" env:"QAE_LEGACY_CRZ"`
	core.OutputConf
}

func newBuildCmd() *buildCmd {
	return &buildCmd{}
}

func (c *buildCmd) Execute(args []string) error {
	logger := log.SetZap(qae.Conf)
	defer logger.Sync()

	setting, err := core.LoadCircuitSetting(c.SettingPath)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to load circuit setting/path:%s/reason:%s", c.SettingPath, err))
		return err
	}
	if c.LegacyCRZ {
		setting.LegacyCRZ = true
	}
	return generate(setting, &c.OutputConf)
}

type demoCmd struct {
	core.OutputConf
}

func newDemoCmd() *demoCmd {
	return &demoCmd{}
}

func (c *demoCmd) Execute(args []string) error {
	logger := log.SetZap(qae.Conf)
	defer logger.Sync()

	setting, err := core.DemoSetting()
	if err != nil {
		return err
	}
	return generate(setting, &c.OutputConf)
}

type versionCmd struct{}

func (c *versionCmd) Execute(args []string) error {
	logger := log.SetZap(qae.Conf)
	defer logger.Sync()

	core.SetVersion(qae.Conf, versionByBuildFlag)
	log.LogVersion()
	fmt.Println(core.Version)
	return nil
}

func generate(setting *core.CircuitSetting, out *core.OutputConf) (err error) {
	core.SetVersion(qae.Conf, versionByBuildFlag)
	log.LogVersion()
	zap.L().Debug(fmt.Sprintf("Providing DI Container with parameters %+v", out))
	container, err := core.ProvideContainer(out)
	if err != nil {
		zap.L().Error(fmt.Sprintf("Failed to setting up DI-Container. Reason:%s", err.Error()))
		return err
	}
	s := core.NewSystemComponents(container)

	ctx := context.Background()
	tel := log.NewTelemetry()
	tel.SetGlobal()
	defer func() {
		if terr := tel.Shutdown(ctx); terr != nil {
			zap.L().Warn(fmt.Sprintf("failed to shut down telemetry/reason:%s", terr))
		}
	}()

	metrics, err := log.NewBuildMetrics(qae.Conf.MetricsDir, tel.MeterProvider)
	if err != nil {
		return err
	}
	defer metrics.Close()

	var w io.Writer = os.Stdout
	if out.Output != "" {
		f, cerr := os.Create(out.Output)
		if cerr != nil {
			zap.L().Error(fmt.Sprintf("failed to create output file/path:%s/reason:%s", out.Output, cerr))
			return cerr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	var h *emitter.Header
	if out.Header {
		h = emitter.NewHeader(core.Version)
	}
	c, err := s.Generate(ctx, w, setting, h)
	if err != nil {
		return err
	}
	metrics.Record(ctx, out.Format, c)
	zap.L().Info(fmt.Sprintf("generated %d instructions on %d qubits", c.Len(), c.NumQubits))
	return nil
}
