// Package builtin wires every compiled-in segment provider into a registry.
package builtin

import (
	"github.com/alexisbeaulieu97/promptr/internal/logger"
	batteryprovider "github.com/alexisbeaulieu97/promptr/internal/providers/battery"
	commandstatusprovider "github.com/alexisbeaulieu97/promptr/internal/providers/commandstatus"
	gitprovider "github.com/alexisbeaulieu97/promptr/internal/providers/git"
	hostnameprovider "github.com/alexisbeaulieu97/promptr/internal/providers/hostname"
	pathprovider "github.com/alexisbeaulieu97/promptr/internal/providers/path"
	rvmprovider "github.com/alexisbeaulieu97/promptr/internal/providers/rvm"
	screenprovider "github.com/alexisbeaulieu97/promptr/internal/providers/screen"
	usernameprovider "github.com/alexisbeaulieu97/promptr/internal/providers/username"
	"github.com/alexisbeaulieu97/promptr/internal/segment"
)

// Runners returns one runner per built-in provider.
func Runners(log *logger.Logger) []segment.Runner {
	return []segment.Runner{
		segment.Adapt(batteryprovider.New(nil)),
		segment.Adapt(commandstatusprovider.New()),
		segment.Adapt(gitprovider.New(log)),
		segment.Adapt(hostnameprovider.New()),
		segment.Adapt(pathprovider.New()),
		segment.Adapt(rvmprovider.New()),
		segment.Adapt(screenprovider.New()),
		segment.Adapt(usernameprovider.New()),
	}
}

// Registry builds a registry holding every built-in provider.
func Registry(log *logger.Logger) *segment.Registry {
	return segment.NewRegistry(log).MustRegister(Runners(log)...)
}
