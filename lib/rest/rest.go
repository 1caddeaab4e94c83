package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	"github.com/uol/gobol/rip"
	"github.com/uol/logh"

	"github.com/uol/tiryns/lib/constants"
	"github.com/uol/tiryns/lib/keyspace"
	"github.com/uol/tiryns/lib/structs"
)

// New returns the http handler to the endpoints
func New(settings structs.SettingsHTTP, keyspaceManager *keyspace.Keyspace) *REST {

	return &REST{
		logger:   logh.CreateContextualLogger(constants.StringsPKG, "rest"),
		settings: settings,
		kspace:   keyspaceManager,
	}
}

// REST is the http handler
type REST struct {
	logger   *logh.ContextualLogger
	settings structs.SettingsHTTP
	kspace   *keyspace.Keyspace
	server   *http.Server
}

// Start asynchronously the handler of the APIs
func (trest *REST) Start() {

	go trest.asyncStart()
}

func (trest *REST) asyncStart() {

	rip.SetLogger(trest.settings.ForceErrorAsDebug)

	router := rip.NewCustomRouter()
	//PROBE
	router.GET("/probe", trest.check)
	//KEYSPACE
	router.HEAD("/keyspaces/:keyspace", trest.kspace.Check)
	router.GET("/keyspaces", trest.kspace.GetAll)
	router.PUT("/keyspaces/:keyspace", trest.kspace.Apply)
	router.DELETE("/keyspaces/:keyspace", trest.kspace.Remove)
	//RECONCILE
	router.POST("/reconcile", trest.kspace.ReconcileBulk)

	var handler http.Handler = router
	if trest.settings.AllowCORS {
		handler = cors.AllowAll().Handler(router)
	}

	trest.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", trest.settings.Bind, trest.settings.Port),
		Handler:           handler,
		ReadTimeout:       60 * time.Second,
		ReadHeaderTimeout: 60 * time.Second,
		WriteTimeout:      60 * time.Second,
		MaxHeaderBytes:    10485760,
	}

	err := trest.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		if logh.ErrorEnabled {
			trest.logger.Error().Err(err).Msg("error listening on the rest server")
		}
	}
}

func (trest *REST) check(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {

	w.WriteHeader(http.StatusOK)
}

// Stop - stops the rest server
func (trest *REST) Stop() {

	if trest.server == nil {
		return
	}

	if err := trest.server.Shutdown(context.Background()); err != nil {
		if logh.ErrorEnabled {
			trest.logger.Error().Err(err).Msg("error stopping the rest server")
		}
	}
}
