package persistence

// ReplicationStrategy - the replication topology of a keyspace
type ReplicationStrategy string

const (
	// SimpleStrategy - single replication factor for the whole cluster
	SimpleStrategy ReplicationStrategy = "SimpleStrategy"

	// NetworkTopologyStrategy - replication factor set per datacenter
	NetworkTopologyStrategy ReplicationStrategy = "NetworkTopologyStrategy"
)

// Keyspace represents a keyspace within the database
type Keyspace struct {
	// Name identifies the keyspace, unique within the cluster
	Name string `json:"name"`
	// Topology is the replication strategy class
	Topology ReplicationStrategy `json:"topology"`
	// Datacenter is only meaningful under NetworkTopologyStrategy
	Datacenter string `json:"datacenter,omitempty"`
	// ReplicationFactor is the number of data copies
	ReplicationFactor int `json:"replicationFactor"`
	// DurableWrites tells whether writes go through the commit log
	DurableWrites bool `json:"durableWrites"`
}
