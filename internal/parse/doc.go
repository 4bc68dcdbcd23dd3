// Package parse extracts structured values from the free text found on game pages.
//
// The statistics site renders players as "NUMBER. SURNAME, FIRSTNAME", goals as a
// running score ("2-1 (PP1)") and penalties as a duration ("2 min"). Names carry
// Nordic and other Latin-script diacritics and may arrive in decomposed form or
// with non-breaking spaces, so every string is normalized before it is matched.
package parse
