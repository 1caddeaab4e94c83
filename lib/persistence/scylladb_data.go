package persistence

const formatCreateKeyspaceSimple = `CREATE KEYSPACE %s WITH REPLICATION = { 'class' : '%s', 'replication_factor' : '%d' } AND DURABLE_WRITES = %t;`

const formatCreateKeyspaceNetwork = `CREATE KEYSPACE %s WITH REPLICATION = { 'class' : '%s', '%s' : '%d' } AND DURABLE_WRITES = %t;`

const formatDropKeyspace = `DROP KEYSPACE IF EXISTS %s`

const queryKeyspaceExists = `SELECT keyspace_name FROM system_schema.keyspaces WHERE keyspace_name = ? LIMIT 1`

const queryListKeyspaces = `SELECT keyspace_name, durable_writes, replication FROM system_schema.keyspaces`
