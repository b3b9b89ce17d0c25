// Package scale rescales ingredient lines to a new serving count.
//
// A line is read by pkg/quantity, multiplied by Context.Factor and written
// back in the shape it came in: a bare string stays a string, a structured
// Ingredient keeps its name and notes and only its quantity changes.
//
// The policy, in order:
//
//   - A factor of exactly 1 returns the line verbatim.
//   - Lines holding a non-scalable phrase ("to taste", "en nypa") are verbatim.
//   - Lines without a readable quantity are verbatim.
//   - Both ends of a range are multiplied.
//   - Countable items (eggs, cloves, "st") round to the nearest half. Below
//     half an item the quantity becomes the locale's optional word.
//   - Approximation markers ("ca", "about") are kept in front of the amount.
//
// The engine never fails on a line; anything it cannot read is passed through.
//
// Usage:
//
//	eng, err := scale.New()
//	if err != nil {
//	    return err
//	}
//	eng.Text("3 ägg", scale.NewContext(4, 2)) // "1.5 ägg"
//
// Engines created WithCache hold a ristretto cache and must be closed.
package scale
