// Package pages serves rendered site pages over net/http. Every request is a
// separate render cycle, so FAQ items collected for one response never leak
// into another.
//
// Typical mount:
//
//	mux.Handle("/", pages.NewHandler(renderer))
package pages
