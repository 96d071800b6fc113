package types

import "github.com/m-mizutani/goerr/v2"

// Version is the application version, overwritten at build time
var Version = "0.1.0"

// Error tags for the three failure categories surfaced to the user
var (
	ErrTagConfig  = goerr.NewTag("config")
	ErrTagNetwork = goerr.NewTag("network")
	ErrTagParse   = goerr.NewTag("parse")
)
