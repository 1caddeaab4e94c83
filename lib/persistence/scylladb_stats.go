package persistence

import (
	"time"

	"github.com/uol/tiryns/lib/constants"
)

type scyllaOperation string

const (
	scyllaCreate scyllaOperation = "create"
	scyllaSelect scyllaOperation = "select"
	scyllaDrop   scyllaOperation = "drop"
)

func (backend *scylladb) statsQuery(function, keyspace string, operation scyllaOperation, d time.Duration) {

	if backend.timelineManager == nil {
		return
	}

	backend.timelineManager.FlattenMaxN(
		function,
		float64(d.Nanoseconds())/float64(time.Millisecond),
		constants.StringsMetricScyllaQueryDuration,
		constants.StringsKeyspace, keyspace,
		constants.StringsOperation, operation,
	)

	backend.timelineManager.FlattenCountIncN(
		function,
		constants.StringsMetricScyllaQuery,
		constants.StringsKeyspace, keyspace,
		constants.StringsOperation, operation,
	)
}

func (backend *scylladb) statsQueryError(function, keyspace string, operation scyllaOperation) {

	if backend.timelineManager == nil {
		return
	}

	backend.timelineManager.FlattenCountIncN(
		function,
		constants.StringsMetricScyllaQueryError,
		constants.StringsKeyspace, keyspace,
		constants.StringsOperation, operation,
	)
}
