// Package heuristic holds the pure text heuristics used to normalize free-form
// assistant replies: code-fence stripping, clarification detection, bullet
// extraction, task-list parsing and the info-sufficiency gates.
//
// Keyword lists and patterns here are a behavioral contract. Changing their
// wording changes which replies are treated as questions or tasks.
package heuristic
