package pixelqa

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Common errors
var (
	ErrUnknownSensor    = errors.New("unknown sensor")
	ErrUnknownCondition = errors.New("unknown condition")
)

// Supported sensors.
const (
	SensorL47 = "L47" // Landsat 4, 5 and 7
	SensorL8  = "L8"  // Landsat 8
)

// Condition names shared by the supported sensors. Sensor-specific
// conditions (cirrus confidence, terrain occlusion) are available by
// their literal table name via [Conditions].
const (
	ConditionFill        = "Fill"
	ConditionClear       = "Clear"
	ConditionWater       = "Water"
	ConditionCloudShadow = "Cloud Shadow"
	ConditionSnow        = "Snow"
	ConditionCloud       = "Cloud"
)

//go:embed tables/pixel_qa.yaml
var tableYAML []byte

type table struct {
	Sensors map[string]map[string][]int `yaml:"sensors"`
}

var (
	loadOnce sync.Once
	loaded   *table
	loadErr  error
)

func load() (*table, error) {
	loadOnce.Do(func() {
		var t table
		if err := yaml.Unmarshal(tableYAML, &t); err != nil {
			loadErr = fmt.Errorf("parsing pixel_qa table: %w", err)
			return
		}
		loaded = &t
	})
	return loaded, loadErr
}

// Sensors returns the supported sensor names, sorted.
func Sensors() []string {
	t, err := load()
	if err != nil {
		// The table is embedded at build time; a parse failure is a
		// packaging bug, not a runtime condition.
		panic(err)
	}
	names := make([]string, 0, len(t.Sensors))
	for name := range t.Sensors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Conditions returns the condition names defined for a sensor, sorted.
func Conditions(sensor string) ([]string, error) {
	t, err := load()
	if err != nil {
		return nil, err
	}
	conds, ok := t.Sensors[sensor]
	if !ok {
		return nil, fmt.Errorf("sensor %q: %w", sensor, ErrUnknownSensor)
	}
	names := make([]string, 0, len(conds))
	for name := range conds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Codes returns the pixel_qa codes carrying a condition for a sensor,
// as a sorted copy. An empty list is valid: some conditions have no
// codes for a given sensor.
func Codes(sensor, condition string) ([]int, error) {
	t, err := load()
	if err != nil {
		return nil, err
	}
	conds, ok := t.Sensors[sensor]
	if !ok {
		return nil, fmt.Errorf("sensor %q: %w", sensor, ErrUnknownSensor)
	}
	codes, ok := conds[condition]
	if !ok {
		return nil, fmt.Errorf("sensor %q condition %q: %w", sensor, condition, ErrUnknownCondition)
	}
	out := append([]int(nil), codes...)
	sort.Ints(out)
	return out, nil
}
