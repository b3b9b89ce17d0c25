// Package quantity reads and writes the amount at the start of an ingredient
// line.
//
// Reading happens in three steps, each a pure function of the previous one:
//
//   - Tokenize splits a line into whitespace-delimited tokens and keeps, next
//     to the raw text, a form with edge punctuation such as parentheses and
//     trailing commas removed.
//   - Classify returns how many leading tokens form the quantity and unit
//     ("1 1/2 cups", "ca 2 dl", "200g") and where the name begins.
//   - Parse turns the quantity text into a value. Integers, decimals with a
//     dot or a comma, vulgar fraction glyphs, ASCII fractions, mixed numbers
//     and ranges are understood; anything else is reported as not parseable
//     rather than guessed.
//
// Format writes a value back, preferring ¼ ½ ¾ ⅓ ⅔ over decimals.
//
// Word knowledge (units, approximation markers) comes from a Vocabulary,
// normally a *lexicon.Lexicon.
package quantity
