// Package validator builds declarative validation out of small Rule values.
//
// A Rule couples a Check func with the ValidationError reported when the
// check fails. Apply runs every rule and aggregates failures into
// ValidationErrors, which implements error:
//
//	err := validator.Apply(
//		validator.Present("name", s.Name),
//		validator.Present("email", s.Email),
//	)
//	if validator.IsValidationError(err) {
//		// reject the request
//	}
package validator
