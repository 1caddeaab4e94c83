package keyspace

import (
	"github.com/uol/gobol"
	"github.com/uol/logh"
	"github.com/uol/tiryns/lib/constants"
	"github.com/uol/tiryns/lib/persistence"
)

//
// The reconciliation is a single check-then-act step: two processes
// running against the same keyspace can still race between the existence
// check and the mutation. Only presence is reconciled; an existing
// keyspace whose replication settings differ from the desired ones is
// treated as already satisfied.
//

// EnsurePresent makes sure the keyspace described by conf exists,
// returning whether a mutation was applied (or would be, under dryRun)
func (kspace *Keyspace) EnsurePresent(dryRun bool, conf Config) (bool, gobol.Error) {

	exists, gerr := kspace.KeyspaceExists(conf.Name)
	if gerr != nil {
		return false, gerr
	}

	if exists {
		return false, nil
	}

	if dryRun {
		if logh.InfoEnabled {
			kspace.logger.Info().
				Str(constants.StringsKeyspace, conf.Name).
				Msg("dry run: keyspace would be created")
		}
		return true, nil
	}

	if gerr := kspace.CreateKeyspace(conf.toKeyspace()); gerr != nil {
		return false, gerr
	}

	created, gerr := kspace.KeyspaceExists(conf.Name)
	if gerr != nil {
		return false, gerr
	}

	return created != exists, nil
}

// EnsureAbsent makes sure no keyspace named name exists, returning
// whether a mutation was applied (or would be, under dryRun)
func (kspace *Keyspace) EnsureAbsent(dryRun bool, name string) (bool, gobol.Error) {

	exists, gerr := kspace.KeyspaceExists(name)
	if gerr != nil {
		return false, gerr
	}

	if !exists {
		return false, nil
	}

	if dryRun {
		if logh.InfoEnabled {
			kspace.logger.Info().
				Str(constants.StringsKeyspace, name).
				Msg("dry run: keyspace would be dropped")
		}
		return true, nil
	}

	if gerr := kspace.DropKeyspace(name); gerr != nil {
		return false, gerr
	}

	return true, nil
}

// Reconcile validates the desired state and applies the minimal mutation
// to reach it
func (kspace *Keyspace) Reconcile(dryRun bool, conf Config) (Result, gobol.Error) {

	if conf.Name == "" {
		return Result{}, errValidationS("Reconcile", "Name can not be empty or nil")
	}

	if !persistence.ValidateKey(conf.Name) {
		return Result{Name: conf.Name}, errValidationS("Reconcile", "Name is not a well formed identifier")
	}

	if gerr := conf.Validate(); gerr != nil {
		return Result{Name: conf.Name}, gerr
	}

	var (
		changed bool
		gerr    gobol.Error
	)

	switch conf.State {
	case StateAbsent:
		changed, gerr = kspace.EnsureAbsent(dryRun, conf.Name)
	default:
		changed, gerr = kspace.EnsurePresent(dryRun, conf)
	}

	if gerr != nil {
		kspace.statsReconcileError("Reconcile", conf.Name, conf.State)
		return Result{Name: conf.Name}, gerr
	}

	kspace.statsReconcile("Reconcile", conf.Name, conf.State, changed)

	return Result{Changed: changed, Name: conf.Name}, nil
}

// ReconcileAll applies every desired state in order, stopping at the
// first error
func (kspace *Keyspace) ReconcileAll(dryRun bool, confs []Config) ([]Result, gobol.Error) {

	results := make([]Result, 0, len(confs))

	for _, conf := range confs {
		result, gerr := kspace.Reconcile(dryRun, conf)
		if gerr != nil {
			return results, gerr
		}
		results = append(results, result)
	}

	return results, nil
}
