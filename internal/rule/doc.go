// Package rule provides the scoring engine shared by every analyzer.
//
// An analyzer is a list of rules executed in a fixed order. Each rule inspects
// the input and returns findings; every finding carries the points it adds to
// (or removes from) the total. The engine folds the points, runs any
// finalizers, clamps the total to [0, 100] and maps it to a level.
//
// Rules are named values and appear by name in debug logs. Rule tables are
// read-only once the engine is built, so an Engine is safe for concurrent use.
//
// The package also provides BatchProcessor for analysing many inputs with a
// bounded number of goroutines.
package rule
