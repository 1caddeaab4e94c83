package keyspace

import (
	"github.com/uol/logh"
	"github.com/uol/tiryns/lib/constants"
	"github.com/uol/tiryns/lib/persistence"
	tlmanager "github.com/uol/timelinemanager"
)

// New creates a new keyspace manager
func New(
	timelineManager *tlmanager.Instance,
	storage *persistence.Storage,
	dryRun bool,
) *Keyspace {
	return &Keyspace{
		Storage:         storage,
		timelineManager: timelineManager,
		dryRun:          dryRun,
		logger:          logh.CreateContextualLogger(constants.StringsPKG, "keyspace"),
	}
}

// Keyspace reconciles desired keyspace states against the cluster
type Keyspace struct {
	*persistence.Storage

	timelineManager *tlmanager.Instance
	dryRun          bool
	logger          *logh.ContextualLogger
}

// DryRun tells whether the manager was started in inspection-only mode
func (kspace *Keyspace) DryRun() bool {
	return kspace.dryRun
}
