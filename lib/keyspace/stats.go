package keyspace

import (
	"strconv"

	"github.com/uol/tiryns/lib/constants"
)

func (kspace *Keyspace) statsReconcile(function, name string, state State, changed bool) {

	if kspace.timelineManager == nil {
		return
	}

	kspace.timelineManager.FlattenCountIncN(
		function,
		constants.StringsMetricReconcile,
		constants.StringsKeyspace, name,
		constants.StringsState, state,
		constants.StringsChanged, strconv.FormatBool(changed),
	)
}

func (kspace *Keyspace) statsReconcileError(function, name string, state State) {

	if kspace.timelineManager == nil {
		return
	}

	kspace.timelineManager.FlattenCountIncN(
		function,
		constants.StringsMetricReconcileError,
		constants.StringsKeyspace, name,
		constants.StringsState, state,
	)
}
