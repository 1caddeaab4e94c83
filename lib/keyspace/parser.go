package keyspace

import (
	"github.com/buger/jsonparser"
	"github.com/uol/gobol"
	"github.com/uol/tiryns/lib/constants"
	"github.com/uol/tiryns/lib/persistence"
)

const cFuncParseConfigs string = "ParseConfigs"

// ParseConfigs - parses one desired state document or an array of them
func ParseConfigs(data []byte) ([]Config, gobol.Error) {

	_, dtype, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, errMalformedJSON(cFuncParseConfigs, err)
	}

	if dtype != jsonparser.Array {
		conf, gerr := ParseConfig(data)
		if gerr != nil {
			return nil, gerr
		}
		return []Config{conf}, nil
	}

	var (
		confs []Config
		gerr  gobol.Error
	)

	_, err = jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, inErr error) {

		if gerr != nil {
			return
		}

		if inErr != nil {
			gerr = errMalformedJSON(cFuncParseConfigs, inErr)
			return
		}

		var conf Config
		conf, gerr = ParseConfig(value)
		if gerr != nil {
			return
		}

		confs = append(confs, conf)
	})

	if gerr != nil {
		return nil, gerr
	}

	if err != nil {
		return nil, errMalformedJSON(cFuncParseConfigs, err)
	}

	return confs, nil
}

// ParseConfig - parses the json bytes to the desired state fields
func ParseConfig(data []byte) (Config, gobol.Error) {

	const function string = "ParseConfig"

	var (
		conf Config
		err  error
	)

	if conf.Name, err = jsonparser.GetString(data, constants.StringsName); err != nil {
		return conf, errValidationS(function, "Name can not be empty or nil")
	}

	state, err := jsonparser.GetString(data, constants.StringsState)
	if err != nil && err != jsonparser.KeyPathNotFoundError {
		return conf, errMalformedJSON(function, err)
	}
	conf.State = State(state)

	topology, err := jsonparser.GetString(data, constants.StringsTopology)
	if err != nil && err != jsonparser.KeyPathNotFoundError {
		return conf, errMalformedJSON(function, err)
	}
	conf.Topology = persistence.ReplicationStrategy(topology)

	if conf.Datacenter, err = jsonparser.GetString(data, constants.StringsDatacenter); err != nil && err != jsonparser.KeyPathNotFoundError {
		return conf, errMalformedJSON(function, err)
	}

	replication, err := jsonparser.GetInt(data, constants.StringsReplicationFactor)
	if err != nil && err != jsonparser.KeyPathNotFoundError {
		return conf, errMalformedJSON(function, err)
	}
	conf.ReplicationFactor = int(replication)

	durable, err := jsonparser.GetBoolean(data, constants.StringsDurableWrites)
	if err != nil && err != jsonparser.KeyPathNotFoundError {
		return conf, errMalformedJSON(function, err)
	}
	if err == nil {
		conf.DurableWrites = &durable
	}

	return conf, nil
}
