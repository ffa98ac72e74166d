package cycle

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"rankine/model"
)

var cfg Config

type Config struct {
	Addr string

	PHigh      float64
	PLow       float64
	InletMode  string
	InletValue float64
	TurbineEff float64
	Units      string

	DomeSamples int
}

func init() {
	file, err := ini.Load("conf/config.ini")
	if err != nil {
		log.Warn("config file not found, using defaults: ", err)
		file = ini.Empty()
	}
	loadCfg(file)
}

func loadCfg(file *ini.File) {
	cfg = Config{
		Addr: file.Section("server").Key("Addr").MustString(":9000"),

		PHigh:      file.Section("cycle").Key("PHigh").MustFloat64(8000),
		PLow:       file.Section("cycle").Key("PLow").MustFloat64(8),
		InletMode:  file.Section("cycle").Key("InletMode").MustString("quality"),
		InletValue: file.Section("cycle").Key("InletValue").MustFloat64(1.0),
		TurbineEff: file.Section("cycle").Key("TurbineEff").MustFloat64(0.95),
		Units:      file.Section("cycle").Key("Units").MustString("SI"),

		DomeSamples: file.Section("plot").Key("DomeSamples").MustInt(100),
	}
}

// Addr is the configured listen address for the UI-facing server.
func Addr() string {
	return cfg.Addr
}

// DomeSamples is the configured saturation-dome resolution per branch.
func DomeSamples() int {
	return cfg.DomeSamples
}

// DefaultUnits is the configured startup unit system.
func DefaultUnits() model.UnitSystem {
	if cfg.Units == "English" {
		return model.English
	}
	return model.SI
}

// DefaultBoundary is the configured startup cycle boundary, in SI.
func DefaultBoundary() model.CycleBoundary {
	mode := model.QualityMode
	if cfg.InletMode == "temperature" {
		mode = model.TemperatureMode
	}
	return model.CycleBoundary{
		PHigh:      cfg.PHigh,
		PLow:       cfg.PLow,
		Inlet:      model.InletSpec{Mode: mode, Value: cfg.InletValue, Set: true},
		TurbineEff: cfg.TurbineEff,
	}
}
