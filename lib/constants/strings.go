package constants

const (
	// StringsEmpty - a empty space
	StringsEmpty = ""

	// StringsPKG - the package abbreviation
	StringsPKG = "pkg"

	// StringsFunc - the function abbreviation
	StringsFunc = "func"

	// StringsKeyspace - the keyspace tag
	StringsKeyspace = "keyspace"

	// StringsOperation - the operation tag
	StringsOperation = "operation"

	// StringsChanged - the changed tag
	StringsChanged = "changed"

	// StringsName - the name property
	StringsName = "name"

	// StringsState - the state property
	StringsState = "state"

	// StringsTopology - the topology property
	StringsTopology = "topology"

	// StringsDatacenter - the datacenter property
	StringsDatacenter = "datacenter"

	// StringsReplicationFactor - the replication factor property
	StringsReplicationFactor = "replicationFactor"

	// StringsDurableWrites - the durable writes property
	StringsDurableWrites = "durableWrites"

	// StringsDryRun - the dry run flag property
	StringsDryRun = "dryRun"

	// StringsTrue - the boolean true as text
	StringsTrue = "true"

	// StringsMetricScyllaQuery - the query count metric
	StringsMetricScyllaQuery = "scylla.query"

	// StringsMetricScyllaQueryDuration - the query duration metric
	StringsMetricScyllaQueryDuration = "scylla.query.duration"

	// StringsMetricScyllaQueryError - the query error metric
	StringsMetricScyllaQueryError = "scylla.query.error"

	// StringsMetricReconcile - the reconciliation count metric
	StringsMetricReconcile = "keyspace.reconcile"

	// StringsMetricReconcileError - the reconciliation error metric
	StringsMetricReconcileError = "keyspace.reconcile.error"
)
