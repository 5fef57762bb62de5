package main

import (
	"log"
	"net/http"

	"go.appointy.com/weld"
	"go.appointy.com/weld/example/library"
)

func main() {
	h, err := library.GetGraphqlServer()
	if err != nil {
		log.Fatalf("Failed to build GraphQL server: %v", err)
	}

	http.Handle("/graphql", h)
	http.Handle("/", weld.PlaygroundHandler("Weld Playground", "/graphql"))

	log.Println("Server running on :8080")
	log.Println("Playground: http://localhost:8080/")

	if err := http.ListenAndServe(":8080", nil); err != nil {
		log.Fatal(err)
	}
}
