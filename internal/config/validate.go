package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if err := validateSettings(&c.Settings); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if err := validatePlatform(&c.Platform); err != nil {
		return fmt.Errorf("platform: %w", err)
	}
	return nil
}

func validateSettings(s *Settings) error {
	if s.ReferenceDPI <= 0 {
		return fmt.Errorf("referenceDpi must be positive, got %d", s.ReferenceDPI)
	}
	if s.LogLevel != "" && !validLogLevels[strings.ToLower(s.LogLevel)] {
		return fmt.Errorf("invalid logLevel: %s (must be debug, info, warn or error)", s.LogLevel)
	}
	return nil
}

func validatePlatform(p *PlatformConfig) error {
	switch p.Backend {
	case "helper":
		if p.Socket == "" {
			return fmt.Errorf("socket is required for the helper backend")
		}
	case "native":
	default:
		return fmt.Errorf("invalid backend: %q (must be helper or native)", p.Backend)
	}
	if p.TimeoutMs < 0 {
		return fmt.Errorf("timeoutMs cannot be negative")
	}
	return nil
}

// Validate checks a scenario: at least one screen, positive non-overlapping
// frames, and well-formed [x, y] pairs.
func (s *Scenario) Validate() error {
	if len(s.Screens) == 0 {
		return fmt.Errorf("no screens defined")
	}
	if s.ReferenceDPI < 0 {
		return fmt.Errorf("referenceDpi cannot be negative")
	}
	if err := validatePair(s.Seed, true); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	for i, sc := range s.Screens {
		if err := validateScreen(&sc); err != nil {
			return fmt.Errorf("screen %d: %w", i, err)
		}
	}

	// Screens must not overlap
	for i := range s.Screens {
		a := s.Screens[i].Frame.ToRect()
		for j := 0; j < i; j++ {
			b := s.Screens[j].Frame.ToRect()
			if a.OverlapsHorizontally(b) && a.OverlapsVertically(b) {
				return fmt.Errorf("screen %d: overlaps screen %d", i, j)
			}
		}
	}

	for i, sample := range s.Samples {
		if err := validatePair(sample.Mouse, false); err != nil {
			return fmt.Errorf("sample %d: mouse: %w", i, err)
		}
		if err := validatePair(sample.Cursor, false); err != nil {
			return fmt.Errorf("sample %d: cursor: %w", i, err)
		}
		if err := validatePair(sample.Expect, true); err != nil {
			return fmt.Errorf("sample %d: expect: %w", i, err)
		}
	}

	return nil
}

func validateScreen(sc *ScreenConfig) error {
	if sc.Frame.Width <= 0 || sc.Frame.Height <= 0 {
		return fmt.Errorf("frame must have positive size, got %dx%d", sc.Frame.Width, sc.Frame.Height)
	}
	if sc.DPI < 0 {
		return fmt.Errorf("dpi cannot be negative")
	}
	if sc.WorkArea != nil {
		frame := sc.Frame.ToRect()
		wa := sc.WorkArea.ToRect()
		if wa.Empty() {
			return fmt.Errorf("workArea must have positive size")
		}
		if wa.Left < frame.Left || wa.Top < frame.Top || wa.Right > frame.Right || wa.Bottom > frame.Bottom {
			return fmt.Errorf("workArea %s exceeds frame %s", wa, frame)
		}
	}
	return nil
}

func validatePair(xy []int, optional bool) error {
	if len(xy) == 0 && optional {
		return nil
	}
	if len(xy) != 2 {
		return fmt.Errorf("expected [x, y], got %d values", len(xy))
	}
	return nil
}
