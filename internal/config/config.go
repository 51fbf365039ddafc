package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/togglewalk/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config is the full run configuration. Flags override values loaded from a file.
type Config struct {
	// Cases restricts which 1-based cases are solved. Empty means all.
	Cases []int `mapstructure:"cases"`
	// Cached selects the range-cached walk over the plain walk.
	Cached bool `mapstructure:"cached"`
	// Relabel renumbers nodes before caching.
	Relabel bool `mapstructure:"relabel"`
	// Borders are the range split points; empty means the default border.
	Borders []int `mapstructure:"borders"`
	// Parallel is the number of cases solved at once.
	Parallel int `mapstructure:"parallel"`
	// Stats appends cache statistics to every answer.
	Stats bool `mapstructure:"stats"`
	// Timeout bounds a single case; zero means no limit.
	Timeout time.Duration `mapstructure:"timeout"`

	LogLevel    string `mapstructure:"log_level"`
	LogJSON     bool   `mapstructure:"log_json"`
	MetricsFile string `mapstructure:"metrics_file"`
	RedisAddr   string `mapstructure:"redis_addr"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Cached:   false,
		Relabel:  true,
		Parallel: 1,
		LogLevel: "info",
	}
}

// Load reads a YAML or JSON file on top of Default.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	if err := Decode(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", filepath.Base(path), err)
	}
	return cfg, cfg.Validate()
}

// Decode applies raw key/value settings onto cfg.
// Lists may be given as sequences or as comma separated strings.
func Decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			stringToIntSliceHook,
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// stringToIntSliceHook splits "1, 3" into elements that the weak decoder turns into []int.
func stringToIntSliceHook(f reflect.Type, t reflect.Type, data any) (any, error) {
	if f.Kind() != reflect.String || t != reflect.TypeOf([]int(nil)) {
		return data, nil
	}
	var parts []string
	for _, p := range strings.Split(data.(string), ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Parallel < 1 {
		return fmt.Errorf("parallel must be at least 1, got %d", c.Parallel)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %v", c.Timeout)
	}
	for _, n := range c.Cases {
		if n < 1 {
			return fmt.Errorf("%w: case %d (cases are numbered from 1)", domain.ErrCaseSelection, n)
		}
	}
	for _, b := range c.Borders {
		if b < 0 || b > domain.MaxNodes {
			return fmt.Errorf("border %d outside [0, %d]", b, domain.MaxNodes)
		}
	}
	return nil
}

// Selection returns a predicate telling whether a case should be solved.
func (c Config) Selection() func(caseNo int) bool {
	if len(c.Cases) == 0 {
		return func(int) bool { return true }
	}
	set := make(map[int]bool, len(c.Cases))
	for _, n := range c.Cases {
		set[n] = true
	}
	return func(caseNo int) bool { return set[caseNo] }
}

// MaxSelectedCases bounds how many case numbers one selection may expand to.
const MaxSelectedCases = 1 << 20

// ParseCases parses a comma separated case list such as "1,3,7".
// Ranges like "2-5" are accepted too. The result is sorted and deduplicated.
func ParseCases(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	seen := map[int]bool{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, isRange := strings.Cut(part, "-")
		from, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrCaseSelection, part)
		}
		to := from
		if isRange {
			if to, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil || to < from {
				return nil, fmt.Errorf("%w: %q", domain.ErrCaseSelection, part)
			}
		}
		if from < 1 {
			return nil, fmt.Errorf("%w: %q (cases are numbered from 1)", domain.ErrCaseSelection, part)
		}
		if to-from >= MaxSelectedCases-len(seen) {
			return nil, fmt.Errorf("%w: %q selects more than %d cases", domain.ErrCaseSelection, part, MaxSelectedCases)
		}
		for n := from; n <= to; n++ {
			seen[n] = true
		}
	}

	cases := make([]int, 0, len(seen))
	for n := range seen {
		cases = append(cases, n)
	}
	sort.Ints(cases)
	return cases, nil
}
