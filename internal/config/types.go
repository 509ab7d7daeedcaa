package config

// Config is the root configuration structure
type Config struct {
	Settings Settings       `yaml:"settings" json:"settings"`
	Platform PlatformConfig `yaml:"platform" json:"platform"`
}

// Settings contains the relocation policy and global application settings
type Settings struct {
	AllowJump    bool   `yaml:"allowJump" json:"allowJump"`
	AllowUnstick bool   `yaml:"allowUnstick" json:"allowUnstick"`
	AllowWrap    bool   `yaml:"allowWrap" json:"allowWrap"`
	ReferenceDPI int    `yaml:"referenceDpi" json:"referenceDpi"` // Used when a screen reports no DPI
	LogLevel     string `yaml:"logLevel" json:"logLevel"`
	LogFile      string `yaml:"logFile,omitempty" json:"logFile,omitempty"` // "-" for stderr
}

// PlatformConfig describes how to reach the input helper
type PlatformConfig struct {
	Backend   string `yaml:"backend" json:"backend"` // "helper" or "native"
	Socket    string `yaml:"socket" json:"socket"`
	TimeoutMs int    `yaml:"timeoutMs" json:"timeoutMs"`
}

// Scenario is a recorded screen layout plus a sequence of samples, replayed
// offline by the simulate command
type Scenario struct {
	Name         string         `yaml:"name,omitempty" json:"name,omitempty"`
	ReferenceDPI int            `yaml:"referenceDpi,omitempty" json:"referenceDpi,omitempty"`
	Policy       *PolicyConfig  `yaml:"policy,omitempty" json:"policy,omitempty"` // Overrides the config policy
	Seed         []int          `yaml:"seed,omitempty" json:"seed,omitempty"`     // [x, y] of the previous sample
	Screens      []ScreenConfig `yaml:"screens" json:"screens"`
	Samples      []SampleConfig `yaml:"samples" json:"samples"`
}

// PolicyConfig is a partial policy; nil fields keep the configured value
type PolicyConfig struct {
	AllowJump    *bool `yaml:"allowJump,omitempty" json:"allowJump,omitempty"`
	AllowUnstick *bool `yaml:"allowUnstick,omitempty" json:"allowUnstick,omitempty"`
	AllowWrap    *bool `yaml:"allowWrap,omitempty" json:"allowWrap,omitempty"`
}

// ScreenConfig is the configuration representation of a screen
type ScreenConfig struct {
	Name     string       `yaml:"name" json:"name"`
	Frame    FrameConfig  `yaml:"frame" json:"frame"`
	WorkArea *FrameConfig `yaml:"workArea,omitempty" json:"workArea,omitempty"` // Defaults to frame
	DPI      int          `yaml:"dpi,omitempty" json:"dpi,omitempty"`
	Primary  bool         `yaml:"primary,omitempty" json:"primary,omitempty"`
}

// FrameConfig is a rectangle given by origin and size
type FrameConfig struct {
	X      int `yaml:"x" json:"x"`
	Y      int `yaml:"y" json:"y"`
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// SampleConfig is one recorded input sample
type SampleConfig struct {
	Kind   string `yaml:"kind,omitempty" json:"kind,omitempty"` // Defaults to "move"
	Mouse  []int  `yaml:"mouse" json:"mouse"`                   // [x, y]
	Cursor []int  `yaml:"cursor" json:"cursor"`                 // [x, y]
	Expect []int  `yaml:"expect,omitempty" json:"expect,omitempty"`
}
