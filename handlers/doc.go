// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the audiobook voting API.

# Handler Types

Each handler is a struct holding a store.Store and nothing else:

  - UserHandler: list users, find-or-create by username
  - AudioBookHandler: list audiobooks with votes, create audiobooks
  - VoteHandler: cast votes

	userHandler := handlers.NewUserHandler(store.NewSQLStore(db))

# Requests

Every write endpoint parses into its own request type (see package models)
with middleware.ParseRequest, so JSON bodies and form or query-string
values are both accepted. A missing required field is a 400 whose body
names the field.

# Voting

	POST /votes {"user_id": 1, "audiobook_id": 1}

Checks run in order and stop at the first failure:

  1. user exists, else 404 "User not found"
  2. audiobook exists, else 404 "Audiobook not found"
  3. no earlier vote for the pair, else 400 "User has already voted for this audiobook"

The last check is backed by a UNIQUE constraint, so concurrent duplicates
cannot both succeed.

# Listing

	GET /audiobooks?user_id=1

Returns every audiobook, including those without votes (vote_count 0),
with user_voted set for the books user 1 voted for.
*/
package handlers
