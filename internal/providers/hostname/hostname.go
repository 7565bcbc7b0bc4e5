package hostnameprovider

import (
	"runtime"
	"strings"

	"github.com/alexisbeaulieu97/promptr/internal/segment"
	"github.com/alexisbeaulieu97/promptr/internal/theme"
)

// Args controls what is appended to the host name.
type Args struct {
	ShowDomain        bool `json:"show_domain"`
	ShowJailIndicator bool `json:"show_jail_indicator"`
	ShowOSIndicator   bool `json:"show_os_indicator"`
}

type hostnameProvider struct{}

// New creates the hostname provider.
func New() segment.Provider[Args] {
	return hostnameProvider{}
}

func (hostnameProvider) Metadata() segment.Metadata {
	return segment.Metadata{
		Name:        "hostname",
		Description: "Host name with optional OS and jail indicators",
	}
}

func (hostnameProvider) DefaultArgs() Args {
	return Args{
		ShowDomain:        false,
		ShowJailIndicator: true,
		ShowOSIndicator:   false,
	}
}

// Segments reads the hostname fact. The os fact picks the OS indicator and
// jailed=1 adds the jail indicator.
func (hostnameProvider) Segments(args Args, state *segment.State) ([]segment.Segment, error) {
	hostname, err := state.Require("hostname")
	if err != nil {
		return nil, err
	}

	if !args.ShowDomain {
		hostname, _, _ = strings.Cut(hostname, ".")
	}

	th := state.Theme().Hostname
	parts := []string{hostname}

	if args.ShowOSIndicator {
		if indicator := osIndicator(th, state.Lookup("os", runtime.GOOS)); indicator != "" {
			parts = append(parts, indicator)
		}
	}

	if args.ShowJailIndicator && state.Lookup("jailed", "0") == "1" {
		parts = append(parts, th.JailIndicator)
	}

	return []segment.Segment{{
		FG:        th.FG,
		BG:        th.BG,
		Text:      strings.Join(parts, ""),
		Separator: segment.Thick,
		Source:    "Hostname",
	}}, nil
}

func osIndicator(th theme.Hostname, goos string) string {
	switch goos {
	case "darwin":
		return th.OSMacOS
	case "freebsd":
		return th.OSFreeBSD
	case "openbsd":
		return th.OSOpenBSD
	case "linux":
		return th.OSLinux
	default:
		return ""
	}
}
