package persistence

import (
	"github.com/uol/gobol"
	"github.com/uol/logh"
	"github.com/uol/tiryns/lib/constants"
)

// Backend hides the underlying implementation of the persistence
type Backend interface {
	// KeyspaceExists should check the cluster schema metadata for the
	// keyspace, never a cached copy of it
	KeyspaceExists(name string) (bool, gobol.Error)

	// CreateKeyspace should create the keyspace described by ks
	CreateKeyspace(ks Keyspace) gobol.Error

	// DropKeyspace should remove the keyspace from the cluster
	DropKeyspace(name string) gobol.Error

	// ListKeyspaces should return all keyspaces visible in the schema
	// metadata
	ListKeyspaces() ([]Keyspace, gobol.Error)
}

// Storage is the entry point to the cluster schema
type Storage struct {
	logger *logh.ContextualLogger
	Backend
}

// NewStorage - creates a storage over the given backend
func NewStorage(backend Backend) *Storage {
	return &Storage{
		logger:  logh.CreateContextualLogger(constants.StringsPKG, "persistence"),
		Backend: backend,
	}
}
