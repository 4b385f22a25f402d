package controllers

import (
	"fmt"
	"net/http"

	gql "github.com/graphql-go/graphql"

	"github.com/jackmarxreacher-creator/rby-sub000/app/services"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/graphql"
)

// NewCatalogGraphQL builds the read-only catalogue query endpoint:
//
//	{ products { id name wholesalePrice retailPrice } }
//	{ product(id: 3) { name size } }
func NewCatalogGraphQL() (http.HandlerFunc, error) {
	products := services.NewProductService()

	productType := gql.NewObject(gql.ObjectConfig{
		Name: "Product",
		Fields: gql.Fields{
			"id":             &gql.Field{Type: gql.Int},
			"name":           &gql.Field{Type: gql.String},
			"size":           &gql.Field{Type: gql.String},
			"image":          &gql.Field{Type: gql.String},
			"wholesalePrice": &gql.Field{Type: gql.Float},
			"retailPrice":    &gql.Field{Type: gql.Float},
		},
	})

	rootQuery := gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"products": &gql.Field{
				Type: gql.NewList(productType),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return products.Catalog()
				},
			},
			"product": &gql.Field{
				Type: productType,
				Args: gql.FieldConfigArgument{
					"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Int)},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					id, idOK := p.Args["id"].(int)
					if !idOK || id <= 0 {
						return nil, fmt.Errorf("invalid product id")
					}
					return products.Get(uint(id))
				},
			},
		},
	})

	schema, err := graphql.NewSchema(rootQuery)
	if err != nil {
		return nil, fmt.Errorf("catalog schema: %w", err)
	}
	return graphql.Handler(schema), nil
}
