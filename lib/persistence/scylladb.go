package persistence

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gocql/gocql"
	"github.com/uol/gobol"
	"github.com/uol/logh"
	"github.com/uol/tiryns/lib/constants"
	tlmanager "github.com/uol/timelinemanager"
)

type scylladb struct {
	session         *gocql.Session
	timelineManager *tlmanager.Instance
	logger          *logh.ContextualLogger
}

// NewScyllaBackend - creates a backend over a cassandra / scylladb session
func NewScyllaBackend(session *gocql.Session, timelineManager *tlmanager.Instance) (Backend, error) {
	if session == nil {
		return nil, fmt.Errorf("no session given")
	}
	return &scylladb{
		session:         session,
		timelineManager: timelineManager,
		logger:          logh.CreateContextualLogger(constants.StringsPKG, "persistence"),
	}, nil
}

// KeyspaceExists - queries the schema metadata for the keyspace
func (backend *scylladb) KeyspaceExists(name string) (bool, gobol.Error) {
	start := time.Now()

	var found string
	if err := backend.session.Query(queryKeyspaceExists, name).Scan(&found); err != nil {
		if err == gocql.ErrNotFound {
			backend.statsQuery("KeyspaceExists", name, scyllaSelect, time.Since(start))
			return false, nil
		}

		backend.statsQueryError("KeyspaceExists", name, scyllaSelect)
		return false, errPersist("KeyspaceExists", "scylladb", err)
	}

	backend.statsQuery("KeyspaceExists", name, scyllaSelect, time.Since(start))
	return true, nil
}

// CreateKeyspace - issues the topology-appropriate CREATE statement
func (backend *scylladb) CreateKeyspace(ks Keyspace) gobol.Error {
	start := time.Now()

	if err := backend.session.Query(createStatement(ks)).Exec(); err != nil {
		backend.statsQueryError("CreateKeyspace", ks.Name, scyllaCreate)
		return errStatement("CreateKeyspace", "scylladb", err)
	}

	backend.statsQuery("CreateKeyspace", ks.Name, scyllaCreate, time.Since(start))

	if logh.InfoEnabled {
		backend.logger.Info().
			Str(constants.StringsKeyspace, ks.Name).
			Msgf("keyspace created: %s (%s)", ks.Name, ks.Topology)
	}

	return nil
}

// DropKeyspace - removes the keyspace from the cluster
func (backend *scylladb) DropKeyspace(name string) gobol.Error {
	start := time.Now()

	if err := backend.session.Query(fmt.Sprintf(formatDropKeyspace, name)).Exec(); err != nil {
		backend.statsQueryError("DropKeyspace", name, scyllaDrop)
		return errStatement("DropKeyspace", "scylladb", err)
	}

	backend.statsQuery("DropKeyspace", name, scyllaDrop, time.Since(start))

	if logh.InfoEnabled {
		backend.logger.Info().
			Str(constants.StringsKeyspace, name).
			Msgf("keyspace dropped: %s", name)
	}

	return nil
}

// ListKeyspaces - returns all keyspaces visible in the schema metadata
func (backend *scylladb) ListKeyspaces() ([]Keyspace, gobol.Error) {
	start := time.Now()

	iter := backend.session.Query(queryListKeyspaces).Iter()

	var (
		name          string
		durableWrites bool
		replication   map[string]string
		keyspaces     []Keyspace
	)

	for iter.Scan(&name, &durableWrites, &replication) {
		ks := Keyspace{
			Name:          name,
			DurableWrites: durableWrites,
		}
		fillReplication(&ks, replication)
		keyspaces = append(keyspaces, ks)
		replication = nil
	}

	if err := iter.Close(); err != nil {
		if err == gocql.ErrNotFound {
			backend.statsQuery("ListKeyspaces", constants.StringsEmpty, scyllaSelect, time.Since(start))
			return []Keyspace{}, errNoContent("ListKeyspaces", "scylladb")
		}

		backend.statsQueryError("ListKeyspaces", constants.StringsEmpty, scyllaSelect)
		return []Keyspace{}, errPersist("ListKeyspaces", "scylladb", err)
	}

	backend.statsQuery("ListKeyspaces", constants.StringsEmpty, scyllaSelect, time.Since(start))
	return keyspaces, nil
}

// createStatement - renders the CREATE KEYSPACE statement for ks
func createStatement(ks Keyspace) string {

	if ks.Topology == NetworkTopologyStrategy {
		return fmt.Sprintf(
			formatCreateKeyspaceNetwork,
			ks.Name,
			ks.Topology,
			ks.Datacenter,
			ks.ReplicationFactor,
			ks.DurableWrites,
		)
	}

	return fmt.Sprintf(
		formatCreateKeyspaceSimple,
		ks.Name,
		ks.Topology,
		ks.ReplicationFactor,
		ks.DurableWrites,
	)
}

// fillReplication - extracts topology and replication factor from the
// system_schema replication map (the class comes fully qualified)
func fillReplication(ks *Keyspace, replication map[string]string) {

	for key, value := range replication {
		switch key {
		case "class":
			if i := strings.LastIndex(value, "."); i >= 0 {
				value = value[i+1:]
			}
			ks.Topology = ReplicationStrategy(value)
		case "replication_factor":
			if rf, err := strconv.Atoi(value); err == nil {
				ks.ReplicationFactor = rf
			}
		default:
			ks.Datacenter = key
			if rf, err := strconv.Atoi(value); err == nil {
				ks.ReplicationFactor = rf
			}
		}
	}
}
