// Package graphql exposes the analytic queries over a GraphQL endpoint.
package graphql

import (
	"fmt"
	"sort"

	"github.com/graphql-go/graphql"

	"github.com/basketlab/copurchase/pkg/analytics"
	"github.com/basketlab/copurchase/pkg/category"
	"github.com/basketlab/copurchase/pkg/graph"
)

// itemCountType mirrors analytics.ItemCount.
var itemCountType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ItemCount",
	Fields: graphql.Fields{
		"item":  &graphql.Field{Type: graphql.String},
		"count": &graphql.Field{Type: graphql.Int},
	},
})

// pairCountType mirrors graph.PairWeight.
var pairCountType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PairCount",
	Fields: graphql.Fields{
		"a":     &graphql.Field{Type: graphql.String},
		"b":     &graphql.Field{Type: graphql.String},
		"count": &graphql.Field{Type: graphql.Int},
	},
})

// categoryItemType is one item of a category-scoped subgraph with its
// surviving in-category neighbors.
var categoryItemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CategoryItem",
	Fields: graphql.Fields{
		"item":      &graphql.Field{Type: graphql.String},
		"neighbors": &graphql.Field{Type: graphql.NewList(itemCountType)},
	},
})

// GenerateSchema builds the query schema over a store and category index.
func GenerateSchema(s *graph.Store, idx *category.Index) (graphql.Schema, error) {
	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"health": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return "ok", nil
				},
			},
			"coPurchases": &graphql.Field{
				Type: graphql.NewList(itemCountType),
				Args: graphql.FieldConfigArgument{
					"item": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"n":    &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					item, _ := p.Args["item"].(string)
					n, _ := p.Args["n"].(int)
					return analytics.TopCoPurchase(s, item, n), nil
				},
			},
			"topPairs": &graphql.Field{
				Type: graphql.NewList(pairCountType),
				Args: graphql.FieldConfigArgument{
					"k": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					k, _ := p.Args["k"].(int)
					return analytics.TopPairs(s, k), nil
				},
			},
			"relation": &graphql.Field{
				Type: graphql.Int,
				Args: graphql.FieldConfigArgument{
					"a": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"b": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					a, _ := p.Args["a"].(string)
					b, _ := p.Args["b"].(string)
					return analytics.Relation(s, a, b), nil
				},
			},
			"category": &graphql.Field{
				Type: graphql.NewList(categoryItemType),
				Args: graphql.FieldConfigArgument{
					"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					name, _ := p.Args["name"].(string)
					return categoryResult(s, idx, name), nil
				},
			},
			"recommend": &graphql.Field{
				Type: graphql.NewList(itemCountType),
				Args: graphql.FieldConfigArgument{
					"items": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.String))},
					"n":     &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					raw, _ := p.Args["items"].([]interface{})
					items := make([]string, 0, len(raw))
					for _, v := range raw {
						if item, ok := v.(string); ok {
							items = append(items, item)
						}
					}
					n, _ := p.Args["n"].(int)
					return analytics.Recommend(s, items, n), nil
				},
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{Query: queryType})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("failed to create schema: %w", err)
	}
	return schema, nil
}

// categoryItem is the resolved shape behind categoryItemType.
type categoryItem struct {
	Item      string                `json:"item"`
	Neighbors []analytics.ItemCount `json:"neighbors"`
}

// categoryResult flattens the filter's nested map into a sorted list so the
// GraphQL response is stable.
func categoryResult(s *graph.Store, idx *category.Index, name string) []categoryItem {
	filtered := analytics.FilterByCategory(s, idx, name)

	out := make([]categoryItem, 0, len(filtered))
	for _, item := range idx.Items(name) {
		neighbors, ok := filtered[item]
		if !ok {
			continue
		}
		ranked := make([]analytics.ItemCount, 0, len(neighbors))
		for neighbor, count := range neighbors {
			ranked = append(ranked, analytics.ItemCount{Item: neighbor, Count: count})
		}
		sortNeighbors(ranked)
		out = append(out, categoryItem{Item: item, Neighbors: ranked})
	}
	return out
}

func sortNeighbors(entries []analytics.ItemCount) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Item < entries[j].Item
	})
}
