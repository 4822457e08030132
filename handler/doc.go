// Package handler provides typed HTTP handlers.
//
// A HandlerFunc receives a Context and a request value filled in by a binder,
// and returns a Response that renders itself:
//
//	type SubmitRequest struct {
//		Name string `json:"name"`
//	}
//
//	func submit(ctx handler.Context, req SubmitRequest) handler.Response {
//		if req.Name == "" {
//			return handler.JSONError("name is required", handler.WithJSONStatus(http.StatusBadRequest))
//		}
//		return handler.JSON(map[string]any{"success": true})
//	}
//
//	r.Post("/submit", handler.Wrap(submit,
//		handler.WithBinder[handler.Context, SubmitRequest](binder.JSON()),
//	))
//
// Binding and rendering errors go to the ErrorHandler. NewErrorHandler builds
// one that logs through slog and writes {"error": message}; a Classifier
// decides the status code and the public message, so internal error text
// never reaches the client.
package handler
