package cassandra

import (
	"github.com/gocql/gocql"
	"github.com/uol/funks"
)

//
// Builds the cassandra / scylladb cluster session.
// @author rnojiri
//

// Settings - the connection settings
type Settings struct {
	Nodes          []string
	Port           int
	Username       string
	Password       string
	Connections    int
	ProtoVersion   int
	Consistency    string
	Timeout        funks.Duration
	ConnectTimeout funks.Duration
}

const (
	defaultPort         = 9042
	defaultProtoVersion = 4
)

// New - creates a new session using the given settings
func New(settings *Settings) (*gocql.Session, error) {

	cluster := gocql.NewCluster(settings.Nodes...)

	if settings.Port > 0 {
		cluster.Port = settings.Port
	} else {
		cluster.Port = defaultPort
	}

	if settings.ProtoVersion > 0 {
		cluster.ProtoVersion = settings.ProtoVersion
	} else {
		cluster.ProtoVersion = defaultProtoVersion
	}

	if settings.Connections > 0 {
		cluster.NumConns = settings.Connections
	}

	if settings.Timeout.Duration > 0 {
		cluster.Timeout = settings.Timeout.Duration
	}

	if settings.ConnectTimeout.Duration > 0 {
		cluster.ConnectTimeout = settings.ConnectTimeout.Duration
	}

	if len(settings.Consistency) > 0 {
		consistency, err := gocql.ParseConsistencyWrapper(settings.Consistency)
		if err != nil {
			return nil, err
		}
		cluster.Consistency = consistency
	}

	if len(settings.Username) > 0 {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: settings.Username,
			Password: settings.Password,
		}
	}

	return cluster.CreateSession()
}
