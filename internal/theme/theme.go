// Package theme holds the colors and symbols each provider draws with.
//
// Every provider owns one sub-theme. Overrides are merged onto the
// compiled-in defaults, so a configuration only names what it changes:
//
//	{ "hostname": { "bg": 128 } }
package theme

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/alexisbeaulieu97/promptr/internal/ansi"
)

// Theme is the full set of sub-themes.
type Theme struct {
	Battery       Battery       `json:"battery"`
	CommandStatus CommandStatus `json:"command_status"`
	Hostname      Hostname      `json:"hostname"`
	VCS           VCS           `json:"vcs"`
	Username      Username      `json:"username"`
	Path          Path          `json:"path"`
	Rvm           Rvm           `json:"rvm"`
	Screen        Screen        `json:"screen"`

	// ThinSeparatorFG, when set, colors Thin glyphs that the renderer forced
	// between two segments sharing a background.
	ThinSeparatorFG *ansi.Color `json:"thin_separator_fg,omitempty"`
}

// Default returns the compiled-in theme.
func Default() Theme {
	return Theme{
		Battery:       DefaultBattery(),
		CommandStatus: DefaultCommandStatus(),
		Hostname:      DefaultHostname(),
		VCS:           DefaultVCS(),
		Username:      DefaultUsername(),
		Path:          DefaultPath(),
		Rvm:           DefaultRvm(),
		Screen:        DefaultScreen(),
	}
}

// Merge decodes a partial theme document onto base. Fields missing from raw
// keep their value from base; unknown fields are rejected. An empty or null
// raw returns base unchanged.
func Merge(base Theme, raw json.RawMessage) (Theme, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return base, nil
	}

	merged := base
	if base.ThinSeparatorFG != nil {
		fg := *base.ThinSeparatorFG
		merged.ThinSeparatorFG = &fg
	}
	dec :=json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&merged); err != nil {
		return base, fmt.Errorf("theme: %w", err)
	}
	if dec.More() {
		return base, fmt.Errorf("theme: unexpected data after theme object")
	}
	return merged, nil
}

// Battery themes the battery provider.
type Battery struct {
	NormalFG ansi.Color `json:"normal_fg"`
	NormalBG ansi.Color `json:"normal_bg"`
	LowFG    ansi.Color `json:"low_fg"`
	LowBG    ansi.Color `json:"low_bg"`

	ChargingSymbol    string `json:"charging_symbol"`
	DischargingSymbol string `json:"discharging_symbol"`
	EmptySymbol       string `json:"empty_symbol"`
	FullSymbol        string `json:"full_symbol"`
}

// DefaultBattery returns the default battery theme.
func DefaultBattery() Battery {
	return Battery{
		NormalFG: ansi.Numbered(7),
		NormalBG: ansi.Numbered(22),
		LowFG:    ansi.Numbered(7),
		LowBG:    ansi.Numbered(197),

		ChargingSymbol:    "\U0001F50C",
		DischargingSymbol: "⚡",
		EmptySymbol:       "❗",
		FullSymbol:        "\U0001F50B",
	}
}

// CommandStatus themes the command_status provider.
type CommandStatus struct {
	SuccessFG ansi.Color `json:"success_fg"`
	SuccessBG ansi.Color `json:"success_bg"`
	FailureFG ansi.Color `json:"failure_fg"`
	FailureBG ansi.Color `json:"failure_bg"`

	RootIndicator string `json:"root_indicator"`
	UserIndicator string `json:"user_indicator"`
}

// DefaultCommandStatus returns the default command_status theme.
func DefaultCommandStatus() CommandStatus {
	return CommandStatus{
		SuccessFG: ansi.Numbered(15),
		SuccessBG: ansi.Numbered(236),
		FailureFG: ansi.Numbered(15),
		FailureBG: ansi.Numbered(161),

		RootIndicator: "#",
		UserIndicator: `\$`,
	}
}

// Hostname themes the hostname provider.
type Hostname struct {
	FG ansi.Color `json:"fg"`
	BG ansi.Color `json:"bg"`

	JailIndicator string `json:"jail_indicator"`
	OSMacOS       string `json:"os_macos"`
	OSFreeBSD     string `json:"os_freebsd"`
	OSOpenBSD     string `json:"os_openbsd"`
	OSLinux       string `json:"os_linux"`
}

// DefaultHostname returns the default hostname theme.
func DefaultHostname() Hostname {
	return Hostname{
		FG: ansi.Numbered(250),
		BG: ansi.Numbered(238),

		JailIndicator: "\U0001F510",
		OSMacOS:       "\U0001F34E",
		OSFreeBSD:     "\U0001F47A",
		OSOpenBSD:     "\U0001F421",
		OSLinux:       "\U0001F427",
	}
}

// Username themes the username provider.
type Username struct {
	FG ansi.Color `json:"fg"`
	BG ansi.Color `json:"bg"`
}

// DefaultUsername returns the default username theme.
func DefaultUsername() Username {
	return Username{FG: ansi.Numbered(250), BG: ansi.Numbered(240)}
}

// Path themes the path provider.
type Path struct {
	FG     ansi.Color `json:"fg"`
	BG     ansi.Color `json:"bg"`
	HomeFG ansi.Color `json:"home_fg"`
	HomeBG ansi.Color `json:"home_bg"`
	LastFG ansi.Color `json:"last_fg"`
	LastBG ansi.Color `json:"last_bg"`

	DirStackIndicator  string `json:"dir_stack_indicator"`
	HomeDirReplacement string `json:"home_dir_replacement"`
	CollapsedIndicator string `json:"collapsed_indicator"`
}

// DefaultPath returns the default path theme.
func DefaultPath() Path {
	return Path{
		FG:     ansi.Numbered(250),
		BG:     ansi.Numbered(237),
		HomeFG: ansi.Numbered(15),
		HomeBG: ansi.Numbered(31),
		LastFG: ansi.Numbered(254),
		LastBG: ansi.Numbered(237),

		DirStackIndicator:  "\U0001F4DA",
		HomeDirReplacement: "~",
		CollapsedIndicator: "…",
	}
}

// Rvm themes the rvm provider.
type Rvm struct {
	FG ansi.Color `json:"fg"`
	BG ansi.Color `json:"bg"`

	MismatchSymbol string `json:"mismatch_symbol"`
}

// DefaultRvm returns the default rvm theme.
func DefaultRvm() Rvm {
	return Rvm{
		FG:             ansi.Numbered(15),
		BG:             ansi.Numbered(124),
		MismatchSymbol: " ≠",
	}
}

// Screen themes the screen provider.
type Screen struct {
	FG ansi.Color `json:"fg"`
	BG ansi.Color `json:"bg"`

	ScreenSymbol string `json:"screen_symbol"`
}

// DefaultScreen returns the default screen theme.
func DefaultScreen() Screen {
	return Screen{
		FG:           ansi.Numbered(250),
		BG:           ansi.Numbered(238),
		ScreenSymbol: "\U0001F4FA",
	}
}
