// Package facts builds the key/value snapshot segment providers read from.
//
// The snapshot starts as the process environment. Platform facts that the
// shell does not export are added under lowercase keys, never overriding a
// value the caller already supplied.
package facts

import (
	"context"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/alexisbeaulieu97/promptr/internal/logger"
)

// Fact keys added on top of the environment.
const (
	KeyOS              = "os"
	KeyPlatform        = "platform"
	KeyPlatformFamily  = "platform_family"
	KeyPlatformVersion = "platform_version"
	KeyHostname        = "hostname"
	KeyJailed          = "jailed"
)

// Collector gathers facts. The function fields exist so tests can replace
// the platform lookups.
type Collector struct {
	Platform func(ctx context.Context) (platform, family, version string, err error)
	Hostname func(ctx context.Context) (string, error)
	Jailed   func() bool

	log *logger.Logger
}

// NewCollector returns a Collector probing the running system.
func NewCollector(log *logger.Logger) *Collector {
	if log == nil {
		log = logger.Nop()
	}
	return &Collector{
		Platform: host.PlatformInformationWithContext,
		Hostname: systemHostname,
		Jailed:   jailed,
		log:      log,
	}
}

// Collect parses environ (KEY=value pairs, as from os.Environ) and adds the
// platform facts. Probe failures are logged and the fact is left unset.
func (c *Collector) Collect(ctx context.Context, environ []string) map[string]string {
	facts := ParseEnviron(environ)

	setDefault(facts, KeyOS, runtime.GOOS)

	if c.Platform != nil {
		platform, family, version, err := c.Platform(ctx)
		if err != nil {
			c.log.Debug("platform information unavailable: " + err.Error())
		} else {
			setDefault(facts, KeyPlatform, platform)
			setDefault(facts, KeyPlatformFamily, family)
			setDefault(facts, KeyPlatformVersion, version)
		}
	}

	if _, ok := facts[KeyHostname]; !ok && c.Hostname != nil {
		name, err := c.Hostname(ctx)
		if err != nil {
			c.log.Debug("hostname unavailable: " + err.Error())
		} else {
			setDefault(facts, KeyHostname, name)
		}
	}

	if c.Jailed != nil && c.Jailed() {
		setDefault(facts, KeyJailed, "1")
	}

	return facts
}

// ParseEnviron turns KEY=value pairs into a map. Entries without '=' are
// skipped; later duplicates win.
func ParseEnviron(environ []string) map[string]string {
	out := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		out[key] = value
	}
	return out
}

func setDefault(facts map[string]string, key, value string) {
	if value == "" {
		return
	}
	if _, ok := facts[key]; ok {
		return
	}
	facts[key] = value
}

func systemHostname(ctx context.Context) (string, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return "", err
	}
	return info.Hostname, nil
}
