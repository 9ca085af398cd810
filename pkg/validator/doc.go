// Package validator provides small, declarative validation rules.
//
// A Rule pairs a boolean Check with the ValidationError reported when the check fails.
// Apply evaluates rules in order and aggregates every failure into a ValidationErrors
// value, which implements error, so callers get all field problems from a single return.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredString("message", spec.Message),
//	    validator.MaxLenString("title", spec.Title, 200),
//	    validator.InList("kind", spec.Kind, kinds),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Has("message"), verrs.Get("message"), ...
//	}
//
// Rules are stateless and safe for concurrent use.
package validator
