package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gocql/gocql"
	jsoniter "github.com/json-iterator/go"
	"github.com/pborman/uuid"
	"github.com/uol/gobol"
	"github.com/uol/gobol/loader"
	"github.com/uol/logh"
	tlmanager "github.com/uol/timelinemanager"

	"github.com/uol/tiryns/lib/cassandra"
	"github.com/uol/tiryns/lib/constants"
	"github.com/uol/tiryns/lib/keyspace"
	"github.com/uol/tiryns/lib/persistence"
	"github.com/uol/tiryns/lib/rest"
	"github.com/uol/tiryns/lib/structs"
)

var (
	json   = jsoniter.ConfigCompatibleWithStandardLibrary
	logger *logh.ContextualLogger
)

// runReport is written to stdout after the startup reconciliation
type runReport struct {
	ID      string            `json:"id"`
	DryRun  bool              `json:"dryRun"`
	Changed bool              `json:"changed"`
	Results []keyspace.Result `json:"results"`
}

// failure is written to stdout when the run can not complete
type failure struct {
	Msg string `json:"msg"`
}

func main() {

	fmt.Println("Starting Tiryns")

	//Parse of command line arguments.
	var confPath string
	var dryRun bool

	flag.StringVar(&confPath, "config", "config.toml", "path to configuration file")
	flag.BoolVar(&dryRun, "dryRun", false, "compute and report changes without applying them")
	flag.Parse()

	//Load conf file.
	settings := new(structs.Settings)

	err := loader.ConfToml(confPath, &settings)
	if err != nil {
		log.Fatalln("error loading config file: ", err)
	} else {
		fmt.Println("config file loaded: ", confPath)
	}

	logger = configureLogger(&settings.Logs)

	dryRun = dryRun || settings.DryRun
	if dryRun {
		if logh.InfoEnabled {
			logger.Info().Msg("DRY RUN IS ENABLED: no statement will be issued")
		}
	}

	if gerr := keyspace.ValidateConfigs(settings.Keyspaces); gerr != nil {
		fail(gerr)
	}

	timelineManager := createTimelineManager(&settings.Stats)
	session := createCassandraConnection(&settings.Cassandra)
	storage := createStorageService(session, timelineManager)
	keyspaceManager := createKeyspaceManager(timelineManager, storage, dryRun)

	results, gerr := keyspaceManager.ReconcileAll(dryRun, settings.Keyspaces)
	if gerr != nil {
		fail(gerr)
	}

	report := runReport{
		ID:      uuid.NewRandom().String(),
		DryRun:  dryRun,
		Results: results,
	}
	for _, result := range results {
		if result.Changed {
			report.Changed = true
			break
		}
	}

	reportJSON, err := json.Marshal(&report)
	if err != nil {
		if logh.ErrorEnabled {
			logger.Error().Err(err).Msg("error rendering the run report")
		}
		os.Exit(1)
	}

	logh.SendToStdout(string(reportJSON))

	if !settings.HTTPserver.Enabled {
		session.Close()
		shutdownTimelineManager(timelineManager)
		os.Exit(0)
	}

	restServer := createRESTserver(settings.HTTPserver, keyspaceManager)

	if logh.InfoEnabled {
		logger.Info().Msg("tiryns started successfully")
	}

	stopChannel := make(chan os.Signal, 1)
	signal.Notify(stopChannel, os.Interrupt, syscall.SIGTERM)

	<-stopChannel

	if logh.InfoEnabled {
		logger.Info().Msg("stopping tiryns...")
	}

	restServer.Stop()

	if logh.InfoEnabled {
		logger.Info().Msg("rest server stopped")
	}

	session.Close()
	shutdownTimelineManager(timelineManager)

	if logh.InfoEnabled {
		logger.Info().Msg("stopping tiryns is done")
	}

	os.Exit(0)
}

// fail - reports the failure record and terminates with a nonzero code
func fail(gerr gobol.Error) {

	if logh.ErrorEnabled {
		logger.Error().
			Str(constants.StringsPKG, gerr.Package()).
			Str(constants.StringsFunc, gerr.Function()).
			Err(gerr).
			Msg(gerr.Message())
	}

	failureJSON, err := json.Marshal(&failure{Msg: gerr.Message()})
	if err == nil {
		logh.SendToStdout(string(failureJSON))
	}

	os.Exit(1)
}

// configureLogger - configures all loggers
func configureLogger(conf *structs.LoggerSettings) *logh.ContextualLogger {

	logh.ConfigureGlobalLogger(conf.Level, conf.Format)

	cl := logh.CreateContextualLogger(constants.StringsPKG, "main")

	if logh.InfoEnabled {
		cl.Info().Msg("log configured")
	}

	return cl
}

// createTimelineManager - creates the timeline manager when statistics
// backends are configured
func createTimelineManager(settings *tlmanager.Configuration) *tlmanager.Instance {

	if len(settings.Backends) == 0 {
		if logh.InfoEnabled {
			logger.Info().Msg("statistics are disabled, no backends configured")
		}
		return nil
	}

	tm, err := tlmanager.New(settings)
	if err != nil {
		if logh.FatalEnabled {
			logger.Fatal().Err(err).Msg("error creating timeline manager")
		}
		os.Exit(1)
	}

	err = tm.Start()
	if err != nil {
		if logh.FatalEnabled {
			logger.Fatal().Err(err).Msg("error starting timeline manager")
		}
		os.Exit(1)
	}

	if logh.InfoEnabled {
		logger.Info().Msg("timeline manager was created")
	}

	return tm
}

func shutdownTimelineManager(timelineManager *tlmanager.Instance) {

	if timelineManager == nil {
		return
	}

	timelineManager.Shutdown()

	if logh.InfoEnabled {
		logger.Info().Msg("statistics service stopped")
	}
}

// createCassandraConnection - creates the cassandra / scylladb connection
func createCassandraConnection(conf *cassandra.Settings) *gocql.Session {

	conn, err := cassandra.New(conf)
	if err != nil {
		if logh.ErrorEnabled {
			logger.Error().Err(err).Msg("error creating cassandra connection")
		}

		failureJSON, merr := json.Marshal(&failure{
			Msg: fmt.Sprintf("unable to connect to cassandra, check login_user and login_password are correct: %s", err),
		})
		if merr == nil {
			logh.SendToStdout(string(failureJSON))
		}

		os.Exit(1)
	}

	if logh.InfoEnabled {
		logger.Info().Msg("cassandra connection was created")
	}

	return conn
}

// createStorageService - creates the schema storage service
func createStorageService(session *gocql.Session, timelineManager *tlmanager.Instance) *persistence.Storage {

	backend, err := persistence.NewScyllaBackend(session, timelineManager)
	if err != nil {
		if logh.FatalEnabled {
			logger.Fatal().Err(err).Msg("error creating storage service")
		}
		os.Exit(1)
	}

	if logh.InfoEnabled {
		logger.Info().Msg("storage service was created")
	}

	return persistence.NewStorage(backend)
}

// createKeyspaceManager - creates the keyspace manager
func createKeyspaceManager(timelineManager *tlmanager.Instance, storage *persistence.Storage, dryRun bool) *keyspace.Keyspace {

	keyspaceManager := keyspace.New(timelineManager, storage, dryRun)

	if logh.InfoEnabled {
		logger.Info().Msg("keyspace manager was created")
	}

	return keyspaceManager
}

// createRESTserver - creates the REST server and starts it
func createRESTserver(conf structs.SettingsHTTP, keyspaceManager *keyspace.Keyspace) *rest.REST {

	restServer := rest.New(conf, keyspaceManager)

	restServer.Start()

	if logh.InfoEnabled {
		logger.Info().Msg("rest server was created")
	}

	return restServer
}
