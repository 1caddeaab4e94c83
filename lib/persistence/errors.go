package persistence

import (
	"errors"
	"net/http"

	"github.com/uol/gobol"
	"github.com/uol/tiryns/lib/tserr"
)

const cPackage string = "persistence"

func errBasic(function, structure, message string, code int, err error) gobol.Error {
	if err != nil {
		return tserr.New(
			err,
			message,
			cPackage+"/"+structure,
			function,
			code,
		)
	}
	return nil
}

func errNoContent(function, structure string) gobol.Error {
	return errBasic(function, structure, "", http.StatusNoContent, errors.New(""))
}

func errPersist(function, structure string, err error) gobol.Error {
	return errBasic(function, structure, err.Error(), http.StatusInternalServerError, err)
}

func errStatement(function, structure string, err error) gobol.Error {
	return errBasic(function, structure, err.Error(), http.StatusInternalServerError, err)
}
