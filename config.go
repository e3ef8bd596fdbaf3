package twobody

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	cfgOnce sync.Once
	config  = _tbconfig{}
)

// _tbconfig is a "hidden" struct, just use tbConfig().
type _tbconfig struct {
	solver    string
	tolerance float64
	maxIters  uint
}

// tbConfig returns the twobody configuration. When the TWOBODY_CONFIG
// environment variable is set, conf.toml is read from that directory;
// otherwise the defaults apply. The load happens at most once, concurrent
// first calls are safe.
func tbConfig() _tbconfig {
	cfgOnce.Do(func() {
		viper.SetDefault("propagation.solver", "universal")
		viper.SetDefault("propagation.tolerance", 1e-7)
		viper.SetDefault("propagation.maxiters", 100)
		if confPath := os.Getenv("TWOBODY_CONFIG"); confPath != "" {
			viper.SetConfigName("conf")
			viper.AddConfigPath(confPath)
			if err := viper.ReadInConfig(); err != nil {
				panic(fmt.Errorf("%s/conf.toml not found", confPath))
			}
		}
		config = _tbconfig{
			solver:    strings.ToLower(viper.GetString("propagation.solver")),
			tolerance: viper.GetFloat64("propagation.tolerance"),
			maxIters:  viper.GetUint("propagation.maxiters"),
		}
	})
	return config
}

// defaultSolver returns the anomaly solver selected in the configuration.
func defaultSolver() AnomalySolver {
	switch tbConfig().solver {
	case "meananomaly":
		return NewMeanAnomalySolver()
	default:
		return NewUniversalSolver()
	}
}
