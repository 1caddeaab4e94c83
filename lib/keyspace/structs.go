package keyspace

import (
	"github.com/uol/gobol"
	"github.com/uol/tiryns/lib/persistence"
)

// State - the desired existence state of a keyspace
type State string

const (
	// StatePresent - the keyspace must exist
	StatePresent State = "present"

	// StateAbsent - the keyspace must not exist
	StateAbsent State = "absent"
)

const (
	// DefaultDatacenter - used when no datacenter is given
	DefaultDatacenter = "datacenter1"

	// DefaultReplicationFactor - used when no replication factor is given
	DefaultReplicationFactor = 1
)

// Config is the desired state of one keyspace
type Config struct {
	Name              string                          `json:"name"`
	State             State                           `json:"state,omitempty"`
	Topology          persistence.ReplicationStrategy `json:"topology,omitempty"`
	Datacenter        string                          `json:"datacenter,omitempty"`
	ReplicationFactor int                             `json:"replicationFactor,omitempty"`
	DurableWrites     *bool                           `json:"durableWrites,omitempty"`
}

// SetDefaults fills the optional fields the same way the configuration
// boundary would
func (c *Config) SetDefaults() {

	if c.State == "" {
		c.State = StatePresent
	}

	if c.Datacenter == "" {
		c.Datacenter = DefaultDatacenter
	}

	if c.ReplicationFactor == 0 {
		c.ReplicationFactor = DefaultReplicationFactor
	}

	if c.DurableWrites == nil {
		durable := true
		c.DurableWrites = &durable
	}
}

// Validate rejects invalid desired states before any statement is built
// or any network call is made. The keyspace name itself is validated by
// the reconciler, since REST callers take it from the URL path.
func (c *Config) Validate() gobol.Error {

	c.SetDefaults()

	if c.State != StatePresent && c.State != StateAbsent {
		return errValidationS("Validate", `State must be one of "present" or "absent"`)
	}

	if c.State == StateAbsent {
		return nil
	}

	if c.Topology != persistence.SimpleStrategy &&
		c.Topology != persistence.NetworkTopologyStrategy {
		return errValidationS("Validate", `Topology must be one of "SimpleStrategy" or "NetworkTopologyStrategy"`)
	}

	if c.ReplicationFactor <= 0 {
		return errValidationS("Validate", "Replication factor can not be less than or equal to 0")
	}

	if c.Topology == persistence.NetworkTopologyStrategy {
		if !persistence.ValidateKey(c.Datacenter) {
			return errValidationS("Validate", "Datacenter is not a well formed identifier")
		}
	}

	return nil
}

// ValidateConfigs rejects any invalid desired state before a cluster
// connection is opened
func ValidateConfigs(confs []Config) gobol.Error {

	for i := range confs {

		if confs[i].Name == "" {
			return errValidationS("ValidateConfigs", "Name can not be empty or nil")
		}

		if !persistence.ValidateKey(confs[i].Name) {
			return errValidationS("ValidateConfigs", "Name is not a well formed identifier")
		}

		if gerr := confs[i].Validate(); gerr != nil {
			return gerr
		}
	}

	return nil
}

// toKeyspace - renders the validated desired state into the persistence
// representation
func (c *Config) toKeyspace() persistence.Keyspace {
	return persistence.Keyspace{
		Name:              c.Name,
		Topology:          c.Topology,
		Datacenter:        c.Datacenter,
		ReplicationFactor: c.ReplicationFactor,
		DurableWrites:     *c.DurableWrites,
	}
}

// Result tells whether the reconciliation changed (or would change) the
// cluster
type Result struct {
	Changed bool   `json:"changed"`
	Name    string `json:"name"`
}

// Response is the generic REST payload envelope
type Response struct {
	TotalRecords int         `json:"totalRecords,omitempty"`
	Payload      interface{} `json:"payload,omitempty"`
	Message      interface{} `json:"message,omitempty"`
}
