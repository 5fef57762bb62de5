package library

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	"go.appointy.com/weld"
	"go.appointy.com/weld/loader"
)

// Book is the stored shape behind the books module.
type Book struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	AuthorID string `json:"authorId"`
}

// Author is the stored shape behind the authors module.
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Server is the in-memory store the module resolvers read and write.
type Server struct {
	books   []*Book
	authors []*Author
}

// NewServer seeds a store with a couple of records.
func NewServer() *Server {
	tolkien := &Author{ID: uuid.NewString(), Name: "J. R. R. Tolkien"}
	leguin := &Author{ID: uuid.NewString(), Name: "Ursula K. Le Guin"}
	return &Server{
		authors: []*Author{tolkien, leguin},
		books: []*Book{
			{ID: uuid.NewString(), Title: "The Hobbit", AuthorID: tolkien.ID},
			{ID: uuid.NewString(), Title: "A Wizard of Earthsea", AuthorID: leguin.ID},
		},
	}
}

// Assemble registers every module unit of the example into a fresh
// assembly. Module order on the wire is controlled entirely by the units'
// declared rules, not by the order they are listed here.
func Assemble(s *Server) (*weld.Assembly, error) {
	a := weld.New()
	if err := loader.Units(a, BooksUnit(s), AuthorsUnit(s)); err != nil {
		return nil, err
	}
	return a, nil
}

// BuildSchema assembles the modules and hands the merged payload to
// graphql-go's executable schema builder.
func BuildSchema(s *Server) (graphql.Schema, error) {
	a, err := Assemble(s)
	if err != nil {
		return graphql.Schema{}, err
	}
	payload, err := a.Build()
	if err != nil {
		return graphql.Schema{}, err
	}

	cfg := graphql.SchemaConfig{}
	for _, def := range payload.TypeDefs {
		cfg.Types = append(cfg.Types, def.(graphql.Type))
	}
	if query := rootObject("Query", payload.Resolvers); query != nil {
		cfg.Query = query
	}
	if mutation := rootObject("Mutation", payload.Resolvers); mutation != nil {
		cfg.Mutation = mutation
	}
	return graphql.NewSchema(cfg)
}

// rootObject lifts one merged resolver section into a graphql root object.
func rootObject(name string, resolvers map[string]interface{}) *graphql.Object {
	section, ok := resolvers[name].(map[string]interface{})
	if !ok || len(section) == 0 {
		return nil
	}
	fields := graphql.Fields{}
	for fieldName, f := range section {
		fields[fieldName] = f.(*graphql.Field)
	}
	return graphql.NewObject(graphql.ObjectConfig{Name: name, Fields: fields})
}

// GetGraphqlServer builds the schema and returns the HTTP handler for the
// /graphql route.
func GetGraphqlServer() (http.Handler, error) {
	schema, err := BuildSchema(NewServer())
	if err != nil {
		return nil, err
	}
	return weld.HTTPHandler(schema), nil
}
