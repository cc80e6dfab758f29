package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/floobyte/site-api/internal/infra/monitoring"
	"github.com/floobyte/site-api/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeUsecaseError maps the usecase error taxonomy onto HTTP statuses.
// Unknown errors collapse to a generic 500 so internals never leak.
func writeUsecaseError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case usecase.CodeAuth:
			writeMessage(w, http.StatusUnauthorized, domainErr.Message)
		case usecase.CodeNotFound:
			writeMessage(w, http.StatusNotFound, domainErr.Message)
		case usecase.CodeUpstream:
			writeMessage(w, http.StatusBadGateway, domainErr.Message)
		default:
			writeMessage(w, http.StatusBadRequest, domainErr.Message)
		}
		return
	}

	var technicalErr *usecase.TechnicalError
	if errors.As(err, &technicalErr) {
		monitoring.CaptureError(technicalErr, map[string]interface{}{"message": technicalErr.Message})
		writeMessage(w, http.StatusInternalServerError, technicalErr.Message)
		return
	}

	monitoring.CaptureError(err, nil)
	writeMessage(w, http.StatusInternalServerError, "Internal server error")
}

func urlParamID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}
