package structs

import (
	"github.com/uol/logh"
	"github.com/uol/tiryns/lib/cassandra"
	"github.com/uol/tiryns/lib/keyspace"
	tlmanager "github.com/uol/timelinemanager"
)

// LoggerSettings - global logger configuration
type LoggerSettings struct {
	Level  logh.Level
	Format logh.Format
}

// SettingsHTTP - the optional rest server configuration
type SettingsHTTP struct {
	Enabled           bool
	Bind              string
	Port              int
	AllowCORS         bool
	ForceErrorAsDebug bool
}

// Settings - the process configuration tree
type Settings struct {
	DryRun     bool
	Keyspaces  []keyspace.Config
	Cassandra  cassandra.Settings
	HTTPserver SettingsHTTP
	Logs       LoggerSettings
	Stats      tlmanager.Configuration
}
