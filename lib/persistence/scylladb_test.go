package persistence

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
)

func TestScylladbBackend(t *testing.T) {

	scyllaAddress := os.Getenv("SCYLLA_IP")
	if len(scyllaAddress) <= 0 {
		t.SkipNow()
	}

	cluster := gocql.NewCluster(scyllaAddress)
	cluster.ProtoVersion = 4
	cluster.Timeout = 2 * time.Minute
	if username := os.Getenv("SCYLLA_USERNAME"); len(username) > 0 {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: username,
			Password: os.Getenv("SCYLLA_PASSWORD"),
		}
	}

	session, err := cluster.CreateSession()
	if !assert.NoError(t, err) {
		return
	}
	defer session.Close()

	backend, err := NewScyllaBackend(session, nil)
	if !assert.NotNil(t, backend) || !assert.NoError(t, err) {
		return
	}

	storage := NewStorage(backend)

	unique := fmt.Sprintf("tiryns_test_%d", time.Now().Unix())

	exists, gerr := storage.KeyspaceExists(unique)
	if !assert.NoError(t, gerr) {
		return
	}
	assert.False(t, exists)

	gerr = storage.CreateKeyspace(Keyspace{
		Name:              unique,
		Topology:          SimpleStrategy,
		ReplicationFactor: 1,
		DurableWrites:     true,
	})
	if !assert.NoError(t, gerr) {
		return
	}

	exists, gerr = storage.KeyspaceExists(unique)
	assert.NoError(t, gerr)
	assert.True(t, exists)

	keyspaces, gerr := storage.ListKeyspaces()
	assert.NoError(t, gerr)
	found := false
	for _, ks := range keyspaces {
		if ks.Name == unique {
			found = true
			assert.Equal(t, SimpleStrategy, ks.Topology)
			assert.Equal(t, 1, ks.ReplicationFactor)
			assert.True(t, ks.DurableWrites)
		}
	}
	assert.True(t, found, "expected the created keyspace on the listing")

	assert.NoError(t, storage.DropKeyspace(unique))

	exists, gerr = storage.KeyspaceExists(unique)
	assert.NoError(t, gerr)
	assert.False(t, exists)
}
