package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/harbourmove/leadsgo/internal/export"
	"github.com/harbourmove/leadsgo/internal/models"
)

// submissionQuery applies the optional form_type filter shared by the
// list and export endpoints. A bad filter value reports to the caller.
func (r *Router) submissionQuery(req *http.Request) (subs []models.Submission, err error) {
	q := r.db.Order("created_at DESC")
	if ft := req.URL.Query().Get("form_type"); ft != "" {
		if !models.FormType(ft).Valid() {
			return nil, fmt.Errorf("unknown form_type %q", ft)
		}
		q = q.Where("form_type = ?", ft)
	}
	err = q.Find(&subs).Error
	return subs, err
}

// listSubmissions returns all submissions newest-first, optionally
// filtered by form type
func (r *Router) listSubmissions(w http.ResponseWriter, req *http.Request) {
	subs, err := r.submissionQuery(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, subs)
}

// updateSubmissionStatus changes the status of a submission. Any
// member of the status enum may be set regardless of the current
// value; the progression shown in the dashboard is advisory only.
func (r *Router) updateSubmissionStatus(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	id := vars["id"]

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	status := models.Status(body.Status)
	if !status.Valid() {
		respondError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	var sub models.Submission
	if err := r.db.First(&sub, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "Submission not found")
		return
	}

	// Column update keeps every other field untouched
	if err := r.db.Model(&sub).Update("status", status).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update status")
		return
	}
	sub.Status = status

	respondJSON(w, http.StatusOK, sub)
	r.hub.Broadcast(wsEvent{Event: "update", Submission: &sub})
}

// deleteSubmission removes a submission permanently
func (r *Router) deleteSubmission(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	id := vars["id"]

	var sub models.Submission
	if err := r.db.First(&sub, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "Submission not found")
		return
	}

	// Hard delete; the model has no DeletedAt column
	if err := r.db.Delete(&sub).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete submission")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Submission deleted successfully",
		"id":      id,
	})
	r.hub.Broadcast(wsEvent{Event: "delete", ID: id})
}

// exportSubmissionsCSV streams the filtered set as a dated CSV attachment
func (r *Router) exportSubmissionsCSV(w http.ResponseWriter, req *http.Request) {
	subs, err := r.submissionQuery(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	data := export.CSV(subs)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.CSVFilename(time.Now())))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// submissionSummaryPDF streams a printable one-page summary
func (r *Router) submissionSummaryPDF(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	var sub models.Submission
	if err := r.db.First(&sub, "id = ?", vars["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Submission not found")
		return
	}

	pdf, err := export.SummaryPDF(&sub, r.cfg.PublicBaseURL)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate summary")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
