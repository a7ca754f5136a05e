package level

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/katalvlaran/polymaze/builder"
	"github.com/katalvlaran/polymaze/difficulty"
)

// EnvPrefix prefixes the environment variables that override top-level keys
// of a level file, e.g. POLYMAZE_PRESET=hard.
const EnvPrefix = "POLYMAZE"

var (
	// ErrLevelFile indicates a level file that cannot be read or decoded.
	ErrLevelFile = errors.New("level: bad level file")

	// ErrNoLevels indicates a level file without entries.
	ErrNoLevels = errors.New("level: no levels defined")
)

// file is the on-disk layout:
//
//	preset: medium            # base params for every level (default: medium)
//	params: {loop_edge_count: 3}
//	levels:
//	  - name: warmup
//	    spec: {shape: cube, n: 3}
//	    seed: 7
//	    preset: hard          # replaces the file-level preset
//	    params: {one_way_ratio: 0.2}
//
// Params are layered: preset, then file params, then entry params.
type file struct {
	Preset string         `mapstructure:"preset"`
	Params map[string]any `mapstructure:"params"`
	Levels []fileEntry    `mapstructure:"levels"`
}

type fileEntry struct {
	Name   string                 `mapstructure:"name"`
	Spec   builder.PolyhedronSpec `mapstructure:"spec"`
	Seed   uint64                 `mapstructure:"seed"`
	Preset string                 `mapstructure:"preset"`
	Params map[string]any         `mapstructure:"params"`
}

// Load reads level descriptors from a YAML, JSON or TOML file (by extension).
// Entries without a name are named by Filename. Every entry is validated;
// the first invalid one fails the load with an error matching
// builder.ErrConstruction or difficulty.ErrParam.
func Load(path string) ([]Descriptor, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("preset", "medium")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLevelFile, path, err)
	}

	var f file
	if err := v.Unmarshal(&f, viper.DecodeHook(decodeHook())); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLevelFile, path, err)
	}
	if len(f.Levels) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoLevels, path)
	}

	out := make([]Descriptor, 0, len(f.Levels))
	for i, e := range f.Levels {
		d, err := f.resolve(e)
		if err != nil {
			return nil, fmt.Errorf("level: %s: entry %d: %w", path, i, err)
		}
		out = append(out, d)
	}

	return out, nil
}

func (f file) resolve(e fileEntry) (Descriptor, error) {
	preset := e.Preset
	if preset == "" {
		preset = f.Preset
	}
	params, err := difficulty.Preset(preset)
	if err != nil {
		return Descriptor{}, err
	}
	for _, layer := range []map[string]any{f.Params, e.Params} {
		if err := overlay(&params, layer); err != nil {
			return Descriptor{}, err
		}
	}

	d := Descriptor{Name: e.Name, Spec: e.Spec, Params: params, Seed: e.Seed}
	if d.Name == "" {
		d.Name = Filename(d)
	}
	if err := d.Validate(); err != nil {
		return Descriptor{}, err
	}

	return d, nil
}

// overlay decodes the keys present in layer onto p, keeping the others.
func overlay(p *difficulty.Params, layer map[string]any) error {
	if len(layer) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           p,
		DecodeHook:       decodeHook(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(layer); err != nil {
		return fmt.Errorf("%w: %w", ErrLevelFile, err)
	}

	return nil
}

// decodeHook lets shapes be written by name.
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.TextUnmarshallerHookFunc()
}

// LoadParams reads a single difficulty file: an optional "preset" key (default
// medium) plus any Params keys overriding it.
//
//	preset: hard
//	one_way_ratio: 0.3
func LoadParams(path string) (difficulty.Params, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return difficulty.Params{}, fmt.Errorf("%w: %s: %w", ErrLevelFile, path, err)
	}

	settings := v.AllSettings()
	preset := "medium"
	if raw, ok := settings["preset"]; ok {
		preset = fmt.Sprint(raw)
		delete(settings, "preset")
	}
	p, err := difficulty.Preset(preset)
	if err != nil {
		return difficulty.Params{}, err
	}
	if err := overlay(&p, settings); err != nil {
		return difficulty.Params{}, fmt.Errorf("level: %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return difficulty.Params{}, fmt.Errorf("level: %s: %w", path, err)
	}

	return p, nil
}
