package web

import (
	"bytes"
	"net/http"

	"github.com/JonMunkholm/replenish/internal/core"
	"github.com/JonMunkholm/replenish/internal/export"
)

// csvFilename is the download name offered for /api/report.csv.
const csvFilename = "replenishment_items.csv"

// ReportResponse is the JSON body of GET /api/report.
type ReportResponse struct {
	RunID     string         `json:"run_id"`
	HeaderRow int            `json:"header_row"`
	RowsRead  int            `json:"rows_read"`
	Columns   map[string]int `json:"columns"`
	Count     int            `json:"count"`
	Items     []core.Item    `json:"items"`
}

func newReportResponse(report *core.Report) ReportResponse {
	cols := make(map[string]int, len(report.Columns))
	for c, idx := range report.Columns {
		cols[c.String()] = idx
	}
	return ReportResponse{
		RunID:     report.RunID.String(),
		HeaderRow: report.HeaderRow,
		RowsRead:  report.RowsRead,
		Columns:   cols,
		Count:     len(report.Items),
		Items:     report.Items,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// handleReport runs the pipeline and returns the report as JSON.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.service.Run(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	w.Header().Set("X-Run-ID", report.RunID.String())
	writeJSON(w, r, newReportResponse(report))
}

// handleReportCSV runs the pipeline and returns the items as a CSV
// download. An empty selection is 204 No Content, matching the CLI which
// writes no file in that case.
func (s *Server) handleReportCSV(w http.ResponseWriter, r *http.Request) {
	report, err := s.service.Run(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	w.Header().Set("X-Run-ID", report.RunID.String())
	if len(report.Items) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, report.Items); err != nil {
		s.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+csvFilename+`"`)
	w.Write(buf.Bytes())
}
