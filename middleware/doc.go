// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request IDs

WithRequestID assigns a UUID to each request (or keeps the client's
X-Request-ID) and echoes it in the response:

	server := http.Server{
		Handler: middleware.WithRequestID(middleware.CORS(mux)),
	}

Handlers read it back with RequestID(r.Context()).

# Request Logging

	mux.HandleFunc("GET /users", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(status, duration_ms, request_id).

# CORS Middleware

Any origin may call the API. Allowed methods are GET, POST and OPTIONS;
preflight requests are answered directly with 200.

# Request Parsing

ParseRequest binds a request struct from a JSON body, or from query-string
and form values when the body is not JSON:

	var req models.CastVoteRequest
	if err := middleware.ParseRequest(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		middleware.ValidationError(w, err)
		return
	}

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
*/
package middleware
