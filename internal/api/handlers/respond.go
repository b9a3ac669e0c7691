package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/wonny/cryptoadvisor/internal/report"
)

// Content types per output format
const (
	contentTypeJSON     = "application/json"
	contentTypeMarkdown = "text/markdown; charset=utf-8"
	contentTypeHTML     = "text/html; charset=utf-8"
)

// envelope is the JSON body shape shared by every endpoint
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{Success: false, Error: message})
}

func respondBody(w http.ResponseWriter, status int, format report.Format, body []byte) {
	w.Header().Set("Content-Type", contentType(format))
	w.WriteHeader(status)
	w.Write(body)
}

func contentType(format report.Format) string {
	switch format {
	case report.FormatMarkdown:
		return contentTypeMarkdown
	case report.FormatHTML:
		return contentTypeHTML
	default:
		return contentTypeJSON
	}
}

// parseFormat reads ?format=; the API defaults to JSON and has no terminal output
func parseFormat(r *http.Request) (report.Format, bool) {
	raw := r.URL.Query().Get("format")
	if raw == "" {
		return report.FormatJSON, true
	}
	f, err := report.ParseFormat(raw)
	if err != nil || f == report.FormatTerminal {
		return "", false
	}
	return f, true
}

// encode renders data as the JSON envelope or md in the requested text format
func encode(format report.Format, data interface{}, md string) ([]byte, error) {
	if format == report.FormatJSON {
		return json.Marshal(envelope{Success: true, Data: data})
	}
	out, err := report.Render(md, format)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}
