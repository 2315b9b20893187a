package config

import (
	"encoding"
	"fmt"
)

// Pass names a pipeline pass.
type Pass int

const (
	_ Pass = iota
	PassPrune
	PassInline
	PassNormalize
)

func (p Pass) String() string {
	v, err := p.MarshalText()
	if err != nil {
		return fmt.Sprintf("pass-invalid(%d)", int(p))
	}

	return string(v)
}

var (
	_ encoding.TextUnmarshaler = (*Pass)(nil)
	_ encoding.TextMarshaler   = Pass(0)
)

func (p *Pass) UnmarshalText(b []byte) error {
	switch string(b) {
	case "prune":
		*p = PassPrune
		return nil
	case "inline":
		*p = PassInline
		return nil
	case "normalize":
		*p = PassNormalize
		return nil
	default:
		return fmt.Errorf("unknown pass %q", b)
	}
}

func (p Pass) MarshalText() ([]byte, error) {
	switch p {
	case PassPrune:
		return []byte("prune"), nil
	case PassInline:
		return []byte("inline"), nil
	case PassNormalize:
		return []byte("normalize"), nil
	default:
		return nil, fmt.Errorf("cannot marshal invalid Pass(%d)", int(p))
	}
}

// ColorMode controls colored report output.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

func (m ColorMode) String() string {
	v, err := m.MarshalText()
	if err != nil {
		return fmt.Sprintf("color-mode-invalid(%d)", int(m))
	}

	return string(v)
}

var _ encoding.TextUnmarshaler = (*ColorMode)(nil)

func (m *ColorMode) UnmarshalText(b []byte) error {
	switch string(b) {
	case "auto", "":
		*m = ColorAuto
		return nil
	case "always":
		*m = ColorAlways
		return nil
	case "never":
		*m = ColorNever
		return nil
	default:
		return fmt.Errorf("unknown color mode %q", b)
	}
}

func (m ColorMode) MarshalText() ([]byte, error) {
	switch m {
	case ColorAuto:
		return []byte("auto"), nil
	case ColorAlways:
		return []byte("always"), nil
	case ColorNever:
		return []byte("never"), nil
	default:
		return nil, fmt.Errorf("cannot marshal invalid ColorMode(%d)", int(m))
	}
}

// Enabled resolves the mode against whether the output is a terminal.
func (m ColorMode) Enabled(terminal bool) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return terminal
	}
}

// LogFormat selects the log encoder.
type LogFormat int

const (
	LogConsole LogFormat = iota
	LogJSON
)

func (f LogFormat) String() string {
	v, err := f.MarshalText()
	if err != nil {
		return fmt.Sprintf("log-format-invalid(%d)", int(f))
	}

	return string(v)
}

var _ encoding.TextUnmarshaler = (*LogFormat)(nil)

func (f *LogFormat) UnmarshalText(b []byte) error {
	switch string(b) {
	case "console", "":
		*f = LogConsole
		return nil
	case "json":
		*f = LogJSON
		return nil
	default:
		return fmt.Errorf("unknown log format %q", b)
	}
}

func (f LogFormat) MarshalText() ([]byte, error) {
	switch f {
	case LogConsole:
		return []byte("console"), nil
	case LogJSON:
		return []byte("json"), nil
	default:
		return nil, fmt.Errorf("cannot marshal invalid LogFormat(%d)", int(f))
	}
}
