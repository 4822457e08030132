// Package environment defines the deployment environments the service
// recognizes and normalizes the aliases operators tend to type
// ("prod", "stage").
//
//	env := environment.Normalize(environment.Environment(os.Getenv("APP_ENV")))
//	if env.IsProduction() {
//	    // ...
//	}
package environment
