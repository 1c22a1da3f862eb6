// Package password scores password strength and generates random passwords.
//
// Scoring is a fixed sequence of heuristic rules: length bonuses, character
// class bonuses, pattern penalties, a weak-password dictionary, and an
// entropy bonus. The total is clamped to [0, 100] and mapped to a level from
// Weak to Very Strong.
//
// A zxcvbn estimate is attached to every analysis for information only. It
// never changes the heuristic score.
package password
