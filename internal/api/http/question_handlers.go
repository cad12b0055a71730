package http

import (
	"net/http"

	"github.com/quizforge/aptitude-app/internal/question"
)

// ImportQuestionsHandler ingests a semicolon-separated CSV bank into the
// category named by the query string. Malformed rows are skipped and counted.
func ImportQuestionsHandler(store question.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat, err := question.ParseCategory(r.URL.Query().Get("category"))
		if err != nil {
			writeError(w, err)
			return
		}
		f, _, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file required", http.StatusBadRequest)
			return
		}
		defer f.Close()

		qs, skipped, err := question.ParseCSV(f, cat)
		if err != nil {
			http.Error(w, "bad csv: "+err.Error(), http.StatusBadRequest)
			return
		}
		inserted, err := store.Insert(r.Context(), qs)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"inserted": inserted, "skipped": skipped})
	}
}

// CountQuestionsHandler reports a category's pool size.
func CountQuestionsHandler(store question.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat, err := question.ParseCategory(r.URL.Query().Get("category"))
		if err != nil {
			writeError(w, err)
			return
		}
		n, err := store.Count(r.Context(), cat)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"category": cat, "count": n})
	}
}
