package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"bloggers/app/models"
	"bloggers/app/repositories"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// Messages reported for failures that are not tied to a request field.
const (
	MsgInvalidID      = "The id must be a positive integer"
	MsgNotFound       = "Resource not found"
	MsgInternalServer = "Internal Server Error"
)

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Errorf("[controllers] failed to encode response: %v", err)
	}
}

func sendError(w http.ResponseWriter, status int, fe *models.FieldError) {
	sendJSON(w, status, fe)
}

// sendServiceError maps an error returned by a service onto a status code.
func sendServiceError(w http.ResponseWriter, component string, err error) {
	var fe *models.FieldError
	switch {
	case errors.As(err, &fe):
		sendError(w, http.StatusBadRequest, fe)
	case errors.Is(err, repositories.ErrNotFound):
		sendError(w, http.StatusNotFound, models.NewFieldError("id", MsgNotFound))
	default:
		log.Errorf("[%s] %v", component, err)
		sendError(w, http.StatusInternalServerError, models.NewFieldError("", MsgInternalServer))
	}
}

// parseID reads the {id} path variable. Only base-10 integers above zero are
// accepted.
func parseID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func decodeBody(r *http.Request, v interface{}) *models.FieldError {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return models.DecodeError(err)
	}
	return nil
}

func sendInvalidID(w http.ResponseWriter) {
	sendError(w, http.StatusBadRequest, models.NewFieldError("id", MsgInvalidID))
}
