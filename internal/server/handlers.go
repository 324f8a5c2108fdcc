package server

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"budgetplanner/internal/logging"
	"budgetplanner/internal/projects"
)

// Endpoints lists the routes reported by the health check
var Endpoints = []string{
	"GET /",
	"GET /api/projects?budget=10",
	"GET /api/projects/all",
	"GET /api/health",
}

const serviceName = "AWS Budget Planner API"

type rootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}

type allProjectsResponse struct {
	Count         int                        `json:"count"`
	Projects      []projects.ProjectTemplate `json:"projects"`
	PricingSource projects.PricingSource     `json:"pricing_source"`
}

type healthResponse struct {
	Status         string                 `json:"status"`
	ProjectsLoaded int                    `json:"projects_loaded"`
	PricingSource  projects.PricingSource `json:"pricing_source"`
	Endpoints      []string               `json:"endpoints"`
}

// validationError mirrors the shape of a query validation failure
type validationError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

type validationResponse struct {
	Detail []validationError `json:"detail"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rootResponse{
		Status:  "healthy",
		Message: serviceName,
		Version: s.opts.Version,
	})
}

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	budget, verr := parseBudget(r)
	if verr != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationResponse{Detail: []validationError{*verr}})
		return
	}

	assembly := s.catalog.Assemble(r.Context())
	writeJSON(w, http.StatusOK, projects.FilterByBudget(assembly.Templates, budget))
}

func (s *Server) handleAllProjects(w http.ResponseWriter, r *http.Request) {
	assembly := s.catalog.Assemble(r.Context())
	writeJSON(w, http.StatusOK, allProjectsResponse{
		Count:         len(assembly.Templates),
		Projects:      assembly.Templates,
		PricingSource: assembly.Source,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	assembly := s.catalog.Assemble(r.Context())
	writeJSON(w, http.StatusOK, healthResponse{
		Status:         "healthy",
		ProjectsLoaded: len(assembly.Templates),
		PricingSource:  assembly.Source,
		Endpoints:      Endpoints,
	})
}

// parseBudget reads the budget query parameter, defaulting to projects.DefaultBudget
func parseBudget(r *http.Request) (float64, *validationError) {
	loc := []string{"query", "budget"}

	raw := r.URL.Query().Get("budget")
	if raw == "" {
		return projects.DefaultBudget, nil
	}

	budget, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(budget) {
		return 0, &validationError{Loc: loc, Msg: "Input should be a valid number", Type: "float_parsing"}
	}

	if err := projects.ValidateBudget(budget); err != nil {
		if errors.Is(err, projects.ErrBudgetOutOfRange) && budget < projects.MinBudget {
			return 0, &validationError{Loc: loc, Msg: "Input should be greater than or equal to 1", Type: "greater_than_equal"}
		}
		return 0, &validationError{Loc: loc, Msg: "Input should be less than or equal to 10000", Type: "less_than_equal"}
	}
	return budget, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("Failed to encode response", err, nil)
	}
}
