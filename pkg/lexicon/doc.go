// Package lexicon holds the per-locale word lists used to read ingredient
// lines: unit words, approximation markers, discrete nouns, non-scalable
// phrases and the word that replaces a quantity too small to buy.
//
// Each locale is a YAML file embedded from data/. Files are parsed once and
// cached; a Lexicon is the union of the selected locales, so adding a language
// means adding a file:
//
//	# data/sv.yaml
//	locale: sv
//	optional: valfritt
//	compounds: true
//	units:
//	  - singular: dl
//	discrete: [ägg, klyfta, klyftor]
//	nonScalable: [efter smak, en nypa]
//
// All lookups fold case and compose to NFC with golang.org/x/text, so "ÄGG",
// "ägg" and a decomposed "ägg" are the same word.
//
// Usage:
//
//	lex, err := lexicon.Load(language.Swedish)
//	if err != nil {
//	    return err
//	}
//	lex.IsUnit("msk")            // true
//	lex.Discrete("vitlöksklyftor") // sv, true
package lexicon
