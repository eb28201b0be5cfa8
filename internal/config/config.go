package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"

	"gltut/internal/motion"

	"github.com/pelletier/go-toml/v2"
)

// Settings holds window and loop configuration
type Settings struct {
	Width        int    `toml:"width"`
	Height       int    `toml:"height"`
	Title        string `toml:"title"` // empty: use the scene title
	Samples      int    `toml:"samples"`
	SwapInterval int    `toml:"swap_interval"`
	FPSLimit     int    `toml:"fps_limit"` // 0 = uncapped (vsync only)

	Animation   string  `toml:"animation"` // "fixed" or "delta"
	ReferenceHz float64 `toml:"reference_hz"`

	ShaderDir   string `toml:"shader_dir"` // empty: embedded shaders
	ShowHUD     bool   `toml:"show_hud"`
	LogFPS      bool   `toml:"log_fps"`
	WaitOnError bool   `toml:"wait_on_error"`
	SlowFrameMs int    `toml:"slow_frame_ms"` // 0 disables slow-frame logging
}

// Default returns the settings the tutorials were written for
func Default() Settings {
	return Settings{
		Width:        1024,
		Height:       768,
		Samples:      4,
		SwapInterval: 1,
		Animation:    string(motion.ModeFixed),
		ReferenceHz:  motion.DefaultReferenceHz,
		WaitOnError:  runtime.GOOS == "windows",
	}
}

// Load reads a TOML file on top of the defaults. A missing path returns the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(data, &s); err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode parses TOML into s, leaving unset keys untouched. Unknown keys are errors.
func Decode(data []byte, s *Settings) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(s); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("parse config: %s", strict.String())
		}
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// Normalize clamps numeric fields to usable ranges and checks enumerations
func (s *Settings) Normalize() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", s.Width, s.Height)
	}
	s.Samples = clamp(s.Samples, 0, 16)
	s.SwapInterval = clamp(s.SwapInterval, 0, 4)
	s.FPSLimit = clamp(s.FPSLimit, 0, 1000)
	if s.SlowFrameMs < 0 {
		s.SlowFrameMs = 0
	}
	if s.ReferenceHz <= 0 {
		s.ReferenceHz = motion.DefaultReferenceHz
	}
	mode, err := motion.ParseMode(s.Animation)
	if err != nil {
		return err
	}
	s.Animation = string(mode)
	return nil
}

// AnimationMode returns the parsed animation mode; call after Normalize
func (s Settings) AnimationMode() motion.Mode {
	return motion.Mode(s.Animation)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// LimitSettings holds the process-wide frame cap read by the FPS limiter
type LimitSettings struct {
	mu       sync.RWMutex
	fpsLimit int
}

var globalLimitSettings = &LimitSettings{}

// GetFPSLimit returns the current frame cap, 0 when uncapped
func GetFPSLimit() int {
	globalLimitSettings.mu.RLock()
	defer globalLimitSettings.mu.RUnlock()
	return globalLimitSettings.fpsLimit
}

// SetFPSLimit sets the frame cap; negative values mean uncapped
func SetFPSLimit(limit int) {
	globalLimitSettings.mu.Lock()
	defer globalLimitSettings.mu.Unlock()
	globalLimitSettings.fpsLimit = max(limit, 0)
}
