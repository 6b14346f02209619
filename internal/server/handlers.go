// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/pdiddy/pubengine/internal/classify"
	"github.com/pdiddy/pubengine/internal/rank"
	"github.com/pdiddy/pubengine/pkg/types"
)

type searchResponse struct {
	Results    []types.RankedResult `json:"results"`
	Total      int                  `json:"total"`
	Page       int                  `json:"page"`
	Size       int                  `json:"size"`
	TotalPages int                  `json:"total_pages"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, codeInvalidRequest, "not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, codeInvalidRequest, "method not allowed")
		return
	}

	query := r.URL.Query().Get("query")
	page := queryInt(r, "page", 1)
	size := queryInt(r, "size", s.cfg.Server.PageSize)
	if page < 1 || size < 1 {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "page and size must be positive")
		return
	}

	var results []types.RankedResult
	if strings.TrimSpace(query) == "" {
		// No query lists every record with a zero score.
		results = s.ranker.All()
	} else {
		key := rank.Key(query)
		if cached, ok := s.cache.Get(key); ok {
			results = cached
		} else {
			results = s.ranker.Search(query)
			s.cache.Set(key, results)
		}
	}

	total := len(results)
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	pageResults := results[start:end]
	if pageResults == nil {
		pageResults = []types.RankedResult{}
	}
	writeJSON(w, http.StatusOK, searchResponse{
		Results:    pageResults,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: (total + size - 1) / size,
	})
}

type classifyRequest struct {
	Text      string `json:"text"`
	ModelType string `json:"model_type"`
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, codeInvalidRequest, "method not allowed")
		return
	}

	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "text is required for classification")
		return
	}

	c, err := s.registry.Get(req.ModelType)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}

	result, err := c.Classify(req.Text)
	if err != nil {
		if errors.Is(err, classify.ErrTrainingRequired) {
			writeError(w, http.StatusConflict, codeTrainingRequired, err.Error())
			return
		}
		s.log.WithError(err).Error("classification failed")
		writeError(w, http.StatusInternalServerError, codeInternal, "classification failed")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleModelInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, codeInvalidRequest, "method not allowed")
		return
	}

	c, err := s.registry.Get(r.URL.Query().Get("model_type"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, c.ModelInfo())
}

type trainOutcomeView struct {
	Report *types.TrainingReport `json:"report,omitempty"`
	Error  string                `json:"error,omitempty"`
}

type trainResponse struct {
	Message string                      `json:"message"`
	Results map[string]trainOutcomeView `json:"results"`
}

func (s *Server) handleTrainModels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, codeInvalidRequest, "method not allowed")
		return
	}

	modelTypes := []string{
		string(types.ModelNaiveBayes),
		string(types.ModelLogisticRegression),
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		outcomes = make(map[string]classify.TrainOutcome, len(modelTypes))
	)
	for _, mt := range modelTypes {
		mt := mt
		wg.Add(1)
		err := s.pool.Submit(func() {
			defer wg.Done()
			results := s.registry.TrainAll(mt)
			mu.Lock()
			outcomes[mt] = results[mt]
			mu.Unlock()
		})
		if err != nil {
			wg.Done()
			mu.Lock()
			outcomes[mt] = classify.TrainOutcome{Err: err}
			mu.Unlock()
		}
	}
	wg.Wait()

	views := make(map[string]trainOutcomeView, len(outcomes))
	failed := 0
	for mt, outcome := range outcomes {
		if outcome.Err != nil {
			failed++
			views[mt] = trainOutcomeView{Error: outcome.Err.Error()}
			continue
		}
		report := outcome.Report
		views[mt] = trainOutcomeView{Report: &report}
	}

	message := "Models trained successfully"
	if failed > 0 {
		message = "Some models failed to train"
	}
	writeJSON(w, http.StatusOK, trainResponse{Message: message, Results: views})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":        "healthy",
		"publications":  s.ranker.Len(),
		"cache_entries": s.cache.Len(),
		"data_dir":      s.cfg.Data.Dir,
	})
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
