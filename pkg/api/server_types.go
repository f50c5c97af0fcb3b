package api

import (
	"time"

	"github.com/basketlab/copurchase/pkg/analytics"
	"github.com/basketlab/copurchase/pkg/category"
	"github.com/basketlab/copurchase/pkg/graph"
	gqlpkg "github.com/basketlab/copurchase/pkg/graphql"
	"github.com/basketlab/copurchase/pkg/logging"
	"github.com/basketlab/copurchase/pkg/metrics"
	"github.com/basketlab/copurchase/pkg/visualization"
)

// Server is the HTTP presentation surface over the co-purchase graph.
type Server struct {
	store          *graph.Store
	index          *category.Index
	graphqlHandler *gqlpkg.GraphQLHandler
	registry       *metrics.Registry
	logger         logging.Logger
	startTime      time.Time
	version        string
	port           int
}

// HealthResponse is the /health payload.
type HealthResponse struct {
	Status       string      `json:"status"`
	Version      string      `json:"version"`
	Uptime       string      `json:"uptime"`
	Timestamp    time.Time   `json:"timestamp"`
	Items        int         `json:"items"`
	Pairs        uint64      `json:"pairs"`
	Transactions uint64      `json:"transactions"`
}

// CoPurchasesResponse is the /co-purchases payload.
type CoPurchasesResponse struct {
	Item    string                `json:"item"`
	Results []analytics.ItemCount `json:"results"`
}

// TopPairsResponse is the /top-pairs payload.
type TopPairsResponse struct {
	Results []graph.PairWeight `json:"results"`
}

// RelationResponse is the /relation payload. Count 0 means no recorded
// relationship, which is an answer rather than an error.
type RelationResponse struct {
	A     string `json:"a"`
	B     string `json:"b"`
	Count int    `json:"count"`
}

// CategoryResponse is the /category payload. Known disambiguates an unknown
// category from a known one whose items share no transactions.
type CategoryResponse struct {
	Category string                    `json:"category"`
	Known    bool                      `json:"known"`
	Items    map[string]map[string]int `json:"items"`
}

// RecommendResponse is the /recommend payload.
type RecommendResponse struct {
	Inputs  []string              `json:"inputs"`
	Results []analytics.ItemCount `json:"results"`
}

// VisualizationResponse is the /visualization payload: the projected
// subgraph plus computed positions.
type VisualizationResponse struct {
	Nodes     []visualization.Node          `json:"nodes"`
	Edges     []visualization.Edge          `json:"edges"`
	Positions map[string]visualization.Position `json:"positions"`
	Layout    string                        `json:"layout"`
}

// ErrorResponse is the uniform error payload for malformed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}
