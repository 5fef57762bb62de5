package library

import (
	"github.com/graphql-go/graphql"
	"go.appointy.com/weld/loader"
)

// AuthorsUnit is the authors module. It declares that it sorts before the
// books module, so the Author type precedes Book in the assembled type
// list regardless of import order.
func AuthorsUnit(s *Server) loader.Unit {
	authorType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Author",
		Fields: graphql.Fields{
			"id":   &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name": &graphql.Field{Type: graphql.String},
		},
	})

	return loader.Unit{
		Name:     "authors",
		TypeDefs: authorType,
		Before:   []string{"books"},
		Resolvers: map[string]interface{}{
			"Query": map[string]interface{}{
				"authors": &graphql.Field{
					Type: graphql.NewList(authorType),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return s.authors, nil
					},
				},
			},
		},
	}
}
