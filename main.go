package main

import (
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/caarlos0/env"
	"github.com/scheerer/hello-formula/formula"
	"github.com/scheerer/hello-formula/internal/dotenv"
	"github.com/scheerer/hello-formula/internal/logging"
	"github.com/scheerer/hello-formula/internal/resolver"
	"github.com/scheerer/hello-formula/internal/util"
)

var logger = logging.New("main")

type FormulaConfig struct {
	Convention string `env:"FORMULA_CONVENTION" envDefault:"RIT"`
	EnvFile    string `env:"FORMULA_ENV_FILE"`
	Color      string `env:"FORMULA_COLOR" envDefault:"auto"`
	LogLevel   string `env:"FORMULA_LOG_LEVEL" envDefault:"warn"`
}

func main() {
	defer logger.Sync()

	config := FormulaConfig{}
	if err := env.Parse(&config); err != nil {
		logger.With(zap.Error(err)).Warn("Failed to parse environment variables, using defaults")
		config = FormulaConfig{Convention: formula.Ritchie.Name, Color: "auto", LogLevel: "warn"}
	}

	Run(config, util.OSLookup, os.Stdout)
}

// Run prints the greeting for config to w. Every failure is logged and
// swallowed; a formula always exits 0.
func Run(config FormulaConfig, lookup util.Lookup, w io.Writer) {
	level, ok := logging.ParseLevel(config.LogLevel)
	logging.GetLeveler().SetAll(level)
	if !ok {
		logger.Warnf("unknown log level %q, using %v", config.LogLevel, level)
	}

	logger.With(zap.Any("config", config)).Debug("Starting formula")

	convention, err := formula.ConventionByName(config.Convention)
	if err != nil {
		logger.With(zap.Error(err)).Warnf("Falling back to the %s convention", formula.Ritchie.Name)
		convention = formula.Ritchie
	}

	lookup, err = dotenv.Layer(lookup, config.EnvFile)
	if err != nil {
		logger.With(zap.Error(err)).Warn("Ignoring FORMULA_ENV_FILE")
	}

	f := formula.Formula{
		Inputs:  formula.Load(resolver.New(lookup), convention),
		Palette: formula.PaletteByMode(config.Color),
	}
	if err := f.Run(w); err != nil {
		logger.With(zap.Error(err)).Error("Failed to print greeting")
	}
}
