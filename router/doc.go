// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the audiobook voting API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store.NewSQLStore(conn))

# Endpoints

	GET  /health                - 200 OK when the database answers a ping
	GET  /users                 - List users
	POST /users                 - Create user, or return the existing one
	GET  /audiobooks?user_id=ID - Audiobooks with vote counts and user_voted
	POST /audiobooks            - Create audiobook
	POST /votes                 - Cast a vote

# Handler Initialization

Every handler gets the same store.Store and nothing else:

	userHandler := handlers.NewUserHandler(s)
	audioBookHandler := handlers.NewAudioBookHandler(s)
	voteHandler := handlers.NewVoteHandler(s)
*/
package router
