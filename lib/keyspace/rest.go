package keyspace

import (
	"io/ioutil"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog"
	"github.com/uol/gobol"
	"github.com/uol/gobol/rip"
	"github.com/uol/logh"
	"github.com/uol/tiryns/lib/constants"
	"github.com/uol/tiryns/lib/persistence"
)

// Check verifies if a keyspace exists
func (kspace *Keyspace) Check(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {

	ks := ps.ByName(constants.StringsKeyspace)
	if ks == "" {
		rip.Fail(w, errNotFound("Check"))
		return
	}

	exists, gerr := kspace.KeyspaceExists(ks)
	if gerr != nil {
		kspace.logRESTError("Check", gerr)
		rip.Fail(w, gerr)
		return
	}

	if !exists {
		rip.Fail(w, errNotFound("Check"))
		return
	}

	rip.Success(w, http.StatusOK, nil)
}

// Apply is a rest endpoint that reconciles one keyspace to the desired
// state given in the request body
func (kspace *Keyspace) Apply(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {

	ks := ps.ByName(constants.StringsKeyspace)
	if ks == "" {
		rip.Fail(w, errNotFound("Apply"))
		return
	}

	if !persistence.ValidateKey(ks) {
		rip.Fail(w, errValidationS(
			"Apply",
			"Name is not a well formed identifier",
		))
		return
	}

	var conf Config
	gerr := rip.FromJSON(r, &conf)
	if gerr != nil {
		rip.Fail(w, gerr)
		return
	}
	conf.Name = ks

	result, gerr := kspace.Reconcile(kspace.requestDryRun(r), conf)
	if gerr != nil {
		kspace.logRESTError("Apply", gerr)
		rip.Fail(w, gerr)
		return
	}

	rip.SuccessJSON(w, http.StatusOK, result)
}

// Remove is a rest endpoint that ensures a keyspace does not exist
func (kspace *Keyspace) Remove(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {

	ks := ps.ByName(constants.StringsKeyspace)
	if ks == "" {
		rip.Fail(w, errNotFound("Remove"))
		return
	}

	result, gerr := kspace.Reconcile(kspace.requestDryRun(r), Config{
		Name:  ks,
		State: StateAbsent,
	})
	if gerr != nil {
		kspace.logRESTError("Remove", gerr)
		rip.Fail(w, gerr)
		return
	}

	rip.SuccessJSON(w, http.StatusOK, result)
}

// ReconcileBulk is a rest endpoint that applies a list of desired states
func (kspace *Keyspace) ReconcileBulk(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {

	data, err := ioutil.ReadAll(r.Body)
	if err != nil {
		rip.Fail(w, errMalformedJSON("ReconcileBulk", err))
		return
	}
	r.Body.Close()

	confs, gerr := ParseConfigs(data)
	if gerr != nil {
		rip.Fail(w, gerr)
		return
	}

	results, gerr := kspace.ReconcileAll(kspace.requestDryRun(r), confs)
	if gerr != nil {
		kspace.logRESTError("ReconcileBulk", gerr)
		rip.Fail(w, gerr)
		return
	}

	rip.SuccessJSON(w, http.StatusOK, Response{
		TotalRecords: len(results),
		Payload:      results,
	})
}

// GetAll is a rest endpoint that returns all keyspaces visible in the
// schema metadata
func (kspace *Keyspace) GetAll(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {

	keyspaces, gerr := kspace.ListKeyspaces()
	if gerr != nil {
		kspace.logRESTError("GetAll", gerr)
		rip.Fail(w, gerr)
		return
	}
	if len(keyspaces) == 0 {
		rip.Fail(w, errNoContent("GetAll"))
		return
	}

	rip.SuccessJSON(w, http.StatusOK, Response{
		TotalRecords: len(keyspaces),
		Payload:      keyspaces,
	})
}

// requestDryRun - the process-wide inspection-only flag can be forced per
// request, never disabled by it
func (kspace *Keyspace) requestDryRun(r *http.Request) bool {
	return kspace.DryRun() || r.URL.Query().Get(constants.StringsDryRun) == constants.StringsTrue
}

func (kspace *Keyspace) logRESTError(function string, gerr gobol.Error) {

	var ev *zerolog.Event
	if logh.ErrorEnabled {
		ev = kspace.logger.Error()
	}

	if ev != nil {
		ev.Str(constants.StringsFunc, function).Err(gerr).Msg(gerr.Message())
	}
}
