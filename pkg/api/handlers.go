package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/basketlab/copurchase/pkg/analytics"
	"github.com/basketlab/copurchase/pkg/visualization"
)

// parseCount reads an optional positive integer query parameter. Zero means
// "not set" and lets the query apply its default.
func parseCount(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, &paramError{name: name, value: raw}
	}
	return n, nil
}

type paramError struct {
	name  string
	value string
}

func (e *paramError) Error() string {
	return "parameter " + e.name + " must be a positive integer, got " + strconv.Quote(e.value)
}

// GET /co-purchases?item=whole+milk&n=5
func (s *Server) handleCoPurchases(w http.ResponseWriter, r *http.Request) {
	item := r.URL.Query().Get("item")
	if item == "" {
		writeError(w, http.StatusBadRequest, "missing required parameter item")
		return
	}
	n, err := parseCount(r, "n")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	results := analytics.TopCoPurchase(s.store, item, n)
	s.registry.RecordQuery("top_copurchase", time.Since(start))

	writeJSON(w, http.StatusOK, CoPurchasesResponse{Item: item, Results: results})
}

// GET /top-pairs?k=3
func (s *Server) handleTopPairs(w http.ResponseWriter, r *http.Request) {
	k, err := parseCount(r, "k")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	results := analytics.TopPairs(s.store, k)
	s.registry.RecordQuery("top_pairs", time.Since(start))

	writeJSON(w, http.StatusOK, TopPairsResponse{Results: results})
}

// GET /relation?a=whole+milk&b=soda
func (s *Server) handleRelation(w http.ResponseWriter, r *http.Request) {
	a := r.URL.Query().Get("a")
	b := r.URL.Query().Get("b")
	if a == "" || b == "" {
		writeError(w, http.StatusBadRequest, "missing required parameters a and b")
		return
	}

	start := time.Now()
	count := analytics.Relation(s.store, a, b)
	s.registry.RecordQuery("relation", time.Since(start))

	writeJSON(w, http.StatusOK, RelationResponse{A: a, B: b, Count: count})
}

// GET /category?name=dairy
func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "missing required parameter name")
		return
	}

	start := time.Now()
	items := analytics.FilterByCategory(s.store, s.index, name)
	s.registry.RecordQuery("filter_category", time.Since(start))

	writeJSON(w, http.StatusOK, CategoryResponse{
		Category: name,
		Known:    s.index.Known(name),
		Items:    items,
	})
}

// GET /recommend?items=whole+milk,yogurt&n=5
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("items")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "missing required parameter items")
		return
	}
	inputs := make([]string, 0)
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			inputs = append(inputs, item)
		}
	}
	if len(inputs) == 0 {
		writeError(w, http.StatusBadRequest, "parameter items contains no item names")
		return
	}
	n, err := parseCount(r, "n")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	results := analytics.Recommend(s.store, inputs, n)
	s.registry.RecordQuery("recommend", time.Since(start))

	writeJSON(w, http.StatusOK, RecommendResponse{Inputs: inputs, Results: results})
}

// GET /visualization?n=10&layout=force
func (s *Server) handleVisualization(w http.ResponseWriter, r *http.Request) {
	n, err := parseCount(r, "n")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	layoutName := r.URL.Query().Get("layout")
	if layoutName == "" {
		layoutName = "force"
	}

	config := &visualization.LayoutConfig{Width: 1400, Height: 1000}
	var layout visualization.Layout
	switch layoutName {
	case "force":
		layout = visualization.NewForceDirectedLayout(config)
	case "circular":
		layout = visualization.NewCircularLayout(config)
	default:
		writeError(w, http.StatusBadRequest, "unknown layout "+strconv.Quote(layoutName))
		return
	}

	start := time.Now()
	projection := visualization.Project(s.store, n)
	positions := layout.ComputeLayout(projection)
	s.registry.RecordQuery("visualization", time.Since(start))

	writeJSON(w, http.StatusOK, VisualizationResponse{
		Nodes:     projection.Nodes,
		Edges:     projection.Edges,
		Positions: positions,
		Layout:    layoutName,
	})
}
