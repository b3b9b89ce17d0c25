// Package recipe scales whole recipe documents and serves the scale HTTP API.
//
// # Documents
//
// A Recipe is a titled list of ingredient lines written for a number of
// servings. Lines are either free text or structured ingredients:
//
//	kind: Recipe
//	apiVersion: portion/v1
//	title: Pannkakor
//	servings: 4
//	ingredients:
//	  - 2,5 dl vetemjöl
//	  - quantity: 6 dl
//	    name: mjölk
//	  - 3 ägg
//	  - salt
//
// Load reads a document from a file or URL, Parse and ParseFromBody from
// memory. All three validate the document before returning it.
//
// # Scaling
//
// Builder scales the ingredient lines of a recipe concurrently, bounded by
// WithConcurrency, and keeps each line's order and shape:
//
//	b, err := recipe.NewBuilder()
//	if err != nil {
//	    return err
//	}
//	defer b.Close()
//
//	res, err := b.Scale(ctx, rec, 6, "")
//
// Result.ShoppingList flattens the scaled lines to text. Both Result and
// ShoppingList render as tables through the serializer package.
//
// # HTTP API
//
//	GET  /v1/scale?line=2+cups+flour&line=3+eggs&from=4&to=6[&locale=en]
//	POST /v1/scale                  ScaleRequest as JSON or YAML
//	POST /v1/recipes/scale?servings=6[&locale=sv][&view=shopping-list]
//
// Responses are JSON. Errors use the server package error envelope.
package recipe
