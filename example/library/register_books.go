package library

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	"go.appointy.com/weld/loader"
)

// BooksUnit is the books module: the Book type plus its query and mutation
// fields. Everything the module contributes travels under the "books"
// identifier.
func BooksUnit(s *Server) loader.Unit {
	bookType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Book",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"title":    &graphql.Field{Type: graphql.String},
			"authorId": &graphql.Field{Type: graphql.ID},
		},
	})

	return loader.Unit{
		Name:     "books",
		TypeDefs: bookType,
		Resolvers: map[string]interface{}{
			"Query": map[string]interface{}{
				"books": &graphql.Field{
					Type: graphql.NewList(bookType),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return s.books, nil
					},
				},
				"book": &graphql.Field{
					Type: bookType,
					Args: graphql.FieldConfigArgument{
						"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					},
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						id := p.Args["id"].(string)
						for _, b := range s.books {
							if b.ID == id {
								return b, nil
							}
						}
						return nil, fmt.Errorf("book %q not found", id)
					},
				},
			},
			"Mutation": map[string]interface{}{
				"addBook": &graphql.Field{
					Type: bookType,
					Args: graphql.FieldConfigArgument{
						"title":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
						"authorId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					},
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						b := &Book{
							ID:       uuid.NewString(),
							Title:    p.Args["title"].(string),
							AuthorID: p.Args["authorId"].(string),
						}
						s.books = append(s.books, b)
						return b, nil
					},
				},
			},
		},
	}
}
