package api

import (
	"net/http"
	"strings"

	"github.com/odvcencio/maestro/internal/models"
)

func (s *Server) handleListIntegrations(w http.ResponseWriter, r *http.Request) {
	status := strings.TrimSpace(r.URL.Query().Get("status"))
	if status == "" {
		jsonResponse(w, http.StatusOK, s.catalog.Integrations())
		return
	}
	if !models.IsIntegrationStatus(status) {
		jsonError(w, "invalid status query parameter", http.StatusBadRequest)
		return
	}
	jsonResponse(w, http.StatusOK, s.catalog.IntegrationsByStatus(status))
}

func (s *Server) handleListConnectors(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, s.connections.Connectors(sessionID(r), s.connectors))
}

func (s *Server) handleSetConnectorConnection(w http.ResponseWriter, r *http.Request) {
	connector, ok := s.connector(r.PathValue("id"))
	if !ok {
		jsonError(w, "connector not found", http.StatusNotFound)
		return
	}
	var req connectionRequest
	if !decodeJSONBody(w, r, &req, false) {
		return
	}
	if req.Connected == nil {
		jsonError(w, "connected is required", http.StatusBadRequest)
		return
	}
	session := sessionID(r)
	s.connections.SetConnector(session, sessionExpiry(r), connector.ID, *req.Connected)
	s.metrics.toggle("connector", *req.Connected)
	jsonResponse(w, http.StatusOK, s.connections.Connectors(session, []models.Connector{connector})[0])
}

func (s *Server) connector(id string) (models.Connector, bool) {
	for _, c := range s.connectors {
		if c.ID == id {
			return c, true
		}
	}
	return models.Connector{}, false
}
