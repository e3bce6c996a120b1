package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/samirrijal/tunimap/internal/core/domain"
	"github.com/samirrijal/tunimap/internal/pkg/logging"
)

var errResolve = errors.New("failed to process request")

// buildSchema creates the GraphQL schema wired to the municipality service.
func buildSchema(deps *Dependencies) (graphql.Schema, error) {
	delegationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Delegation",
		Fields: graphql.Fields{
			"name":       &graphql.Field{Type: graphql.String},
			"nameAr":     &graphql.Field{Type: graphql.String},
			"code":       &graphql.Field{Type: graphql.String},
			"postalCode": &graphql.Field{Type: graphql.String},
			"latitude":   &graphql.Field{Type: graphql.Float},
			"longitude":  &graphql.Field{Type: graphql.Float},
		},
	})

	governorateType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Governorate",
		Fields: graphql.Fields{
			"name":        &graphql.Field{Type: graphql.String},
			"nameAr":      &graphql.Field{Type: graphql.String},
			"code":        &graphql.Field{Type: graphql.String},
			"delegations": &graphql.Field{Type: graphql.NewList(delegationType)},
		},
	})

	statsType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Stats",
		Fields: graphql.Fields{
			"governorates": &graphql.Field{Type: graphql.Int},
			"delegations":  &graphql.Field{Type: graphql.Int},
			"postalCodes":  &graphql.Field{Type: graphql.Int},
		},
	})

	suggestionType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Suggestion",
		Fields: graphql.Fields{
			"kind":          &graphql.Field{Type: graphql.String},
			"name":          &graphql.Field{Type: graphql.String},
			"nameAr":        &graphql.Field{Type: graphql.String},
			"governorate":   &graphql.Field{Type: graphql.String},
			"governorateAr": &graphql.Field{Type: graphql.String},
			"distance":      &graphql.Field{Type: graphql.Int},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"municipalities": &graphql.Field{
				Type:        graphql.NewList(governorateType),
				Description: "Search, filter and sort governorates",
				Args: graphql.FieldConfigArgument{
					"search":     &graphql.ArgumentConfig{Type: graphql.String},
					"name":       &graphql.ArgumentConfig{Type: graphql.String},
					"delegation": &graphql.ArgumentConfig{Type: graphql.String},
					"postalCode": &graphql.ArgumentConfig{Type: graphql.String},
					"sort":       &graphql.ArgumentConfig{Type: graphql.String},
					"order":      &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					q := domain.ParseMunicipalityQuery(func(key string) string {
						s, _ := p.Args[key].(string)
						return s
					})
					res, err := deps.Municipalities.List(p.Context, q)
					if err != nil {
						return nil, resolveError(p, err)
					}
					return governoratesToGQL(res.Governorates), nil
				},
			},
			"nearby": &graphql.Field{
				Type:        graphql.NewList(governorateType),
				Description: "Delegations within radius kilometers of a point",
				Args: graphql.FieldConfigArgument{
					"lat":    &graphql.ArgumentConfig{Type: graphql.Float},
					"lng":    &graphql.ArgumentConfig{Type: graphql.Float},
					"radius": &graphql.ArgumentConfig{Type: graphql.Float},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					params := domain.NearbyParams{
						Lat:    floatArg(p.Args, "lat"),
						Lng:    floatArg(p.Args, "lng"),
						Radius: floatArg(p.Args, "radius"),
					}
					govs, err := deps.Municipalities.Nearby(p.Context, params)
					if err != nil {
						return nil, resolveError(p, err)
					}
					return governoratesToGQL(govs), nil
				},
			},
			"stats": &graphql.Field{
				Type:        statsType,
				Description: "Dataset counts",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					st, err := deps.Municipalities.Stats(p.Context)
					if err != nil {
						return nil, resolveError(p, err)
					}
					return map[string]interface{}{
						"governorates": st.Governorates,
						"delegations":  st.Delegations,
						"postalCodes":  st.PostalCodes,
					}, nil
				},
			},
			"suggest": &graphql.Field{
				Type:        graphql.NewList(suggestionType),
				Description: "Names close to a misspelled term",
				Args: graphql.FieldConfigArgument{
					"q":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"limit": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: deps.suggestLimit()},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					q := p.Args["q"].(string)
					limit, _ := p.Args["limit"].(int)
					out, err := deps.Municipalities.Suggest(p.Context, q, limit)
					if err != nil {
						return nil, resolveError(p, err)
					}
					items := make([]map[string]interface{}, len(out))
					for i, s := range out {
						items[i] = map[string]interface{}{
							"kind":          s.Kind,
							"name":          s.Name,
							"nameAr":        s.NameAr,
							"governorate":   s.Governorate,
							"governorateAr": s.GovernorateAr,
							"distance":      s.Distance,
						}
					}
					return items, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
}

// GraphQLHandler serves the GraphQL endpoint.
func GraphQLHandler(deps *Dependencies) fiber.Handler {
	schema, err := buildSchema(deps)
	if err != nil {
		// This would be a programming error in the schema definition
		panic("graphql schema build: " + err.Error())
	}

	type gqlRequest struct {
		Query         string                 `json:"query"`
		OperationName string                 `json:"operationName"`
		Variables     map[string]interface{} `json:"variables"`
	}

	return func(c *fiber.Ctx) error {
		var req gqlRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid request body")
		}
		if req.Query == "" {
			return errBadRequest(c, "query is required")
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        c.UserContext(),
		})

		return c.JSON(result)
	}
}

// resolveError logs the cause and hides it from the client.
func resolveError(p graphql.ResolveParams, err error) error {
	logging.FromContext(p.Context).Error("graphql resolve failed",
		"field", p.Info.FieldName,
		"error", err,
	)
	return errResolve
}

func floatArg(args map[string]interface{}, key string) *float64 {
	switch v := args[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	default:
		return nil
	}
}

func governoratesToGQL(govs []domain.Governorate) []map[string]interface{} {
	out := make([]map[string]interface{}, len(govs))
	for i, g := range govs {
		dels := make([]map[string]interface{}, len(g.Delegations))
		for j, d := range g.Delegations {
			dels[j] = map[string]interface{}{
				"name":       d.Name,
				"nameAr":     d.NameAr,
				"code":       d.Code,
				"postalCode": d.PostalCode,
				"latitude":   d.Latitude,
				"longitude":  d.Longitude,
			}
		}
		out[i] = map[string]interface{}{
			"name":        g.Name,
			"nameAr":      g.NameAr,
			"code":        g.Code,
			"delegations": dels,
		}
	}
	return out
}
