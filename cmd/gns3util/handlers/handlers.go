// Package handlers provides command handler functions for gns3util.
//
// This package contains the command execution logic behind the `gns3util get`
// command tree. Handlers are plain cobra RunE functions; the commands package
// declares the commands and main wires the two together.
//
// The package is organized as follows:
// - dispatch.go: the generic handler built for every registry descriptor
// - stream.go: the notification stream commands
// - find.go: the fuzzy drill-down commands and usernames-and-ids
//
// Every handler starts by applying the logging configuration, builds its own
// API client from the current configuration, and writes command output to the
// command's stdout. Logs always go to stderr.
package handlers

import (
	"github.com/concave-dev/gns3util/cmd/gns3util/client"
	"github.com/concave-dev/gns3util/cmd/gns3util/selector"
)

// NewFacade builds the API client for one command invocation from the
// global configuration and the stored credential.
var NewFacade = func() (client.Facade, error) {
	api, err := client.CreateAPIClient()
	if err != nil {
		return nil, err
	}
	return api, nil
}

// NewSelector builds the drill-down selector registered under name.
var NewSelector = selector.New
