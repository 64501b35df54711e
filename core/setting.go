package core

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	jsoniter "github.com/json-iterator/go"
	"github.com/oqtopus-team/oqtopus-qae/circuit"
	"github.com/oqtopus-team/oqtopus-qae/common"
	"github.com/oqtopus-team/oqtopus-qae/gate"
	"go.uber.org/zap"
)

const (
	SettingFormatTOML = "toml"
	SettingFormatJSON = "json"
)

var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

// CircuitSetting is the file form of a circuit configuration. Thetas are
// numbers or angle strings such as "pi/2"; absent axes and qubits take their
// defaults.
type CircuitSetting struct {
	NumQubits       int           `toml:"num_qubits" json:"num_qubits"`
	NumLatentQubits int           `toml:"num_latent_qubits" json:"num_latent_qubits"`
	Thetas          []interface{} `toml:"thetas" json:"thetas"`
	Axes            []string      `toml:"axes,omitempty" json:"axes,omitempty"`
	Qubits          []int         `toml:"qubits,omitempty" json:"qubits,omitempty"`
	LegacyCRZ       bool          `toml:"legacy_crz" json:"legacy_crz"`
}

func settingFormatOf(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return SettingFormatJSON
	}
	return SettingFormatTOML
}

func LoadCircuitSetting(path string) (*CircuitSetting, error) {
	s, err := common.ReadSettingsFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCircuitSetting(s, settingFormatOf(path))
}

func ParseCircuitSetting(s string, format string) (*CircuitSetting, error) {
	cs := &CircuitSetting{}
	switch format {
	case SettingFormatTOML:
		if _, err := toml.Decode(s, cs); err != nil {
			zap.L().Error(fmt.Sprintf("failed to decode toml circuit setting/reason:%s", err))
			return nil, err
		}
	case SettingFormatJSON:
		if err := jsonIter.UnmarshalFromString(s, cs); err != nil {
			zap.L().Error(fmt.Sprintf("failed to decode json circuit setting/reason:%s", err))
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%s is an unknown setting format", format)
	}
	zap.L().Debug(fmt.Sprintf("circuit setting is %+v", cs))
	return cs, nil
}

func DemoSetting() (*CircuitSetting, error) {
	return ParseCircuitSetting(common.DemoCircuitSetting, SettingFormatTOML)
}

// Config converts the setting into a validated circuit configuration.
func (cs *CircuitSetting) Config() (*circuit.Config, error) {
	thetas := make([]float64, 0, len(cs.Thetas))
	for i, v := range cs.Thetas {
		th, err := toAngle(v)
		if err != nil {
			return nil, fmt.Errorf("theta %d: %w", i, err)
		}
		thetas = append(thetas, th)
	}
	var axes []gate.Axis
	if cs.Axes != nil {
		axes = make([]gate.Axis, 0, len(cs.Axes))
		for i, s := range cs.Axes {
			a, err := gate.ParseAxis(s)
			if err != nil {
				return nil, fmt.Errorf("axis %d: %w", i, err)
			}
			axes = append(axes, a)
		}
	}
	return circuit.NewConfig(cs.NumQubits, cs.NumLatentQubits, thetas, axes, cs.Qubits,
		circuit.WithLegacyCRZ(cs.LegacyCRZ))
}

func toAngle(v interface{}) (float64, error) {
	switch t := v.(type) {
	case string:
		return common.ParseAngle(t)
	case float64:
		return t, nil
	case int64:
		return float64(t), nil
	case int:
		return float64(t), nil
	default:
		return 0, fmt.Errorf("%v(%T) is not an angle", v, v)
	}
}
