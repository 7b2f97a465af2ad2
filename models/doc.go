// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Each endpoint has its own request struct. Requests bind from a JSON body or
from form/query values (BindForm) and check themselves with Validate:

  - CreateUserRequest: username
  - CreateAudioBookRequest: title, author, cover_image
  - CastVoteRequest: user_id, audiobook_id
  - ListAudioBooksRequest: user_id (query string)

Validate returns a *MissingParameterError naming the first absent field.

# Response Types

  - ExistingUserResponse: success, user
  - CastVoteResponse: message, vote
  - ErrorResponse: error, message, field

# Domain Types

  - User: id, username
  - AudioBook: id, title, author, cover_image
  - AudioBookWithVotes: AudioBook plus vote_count and user_voted
  - Vote: id, user_id, audiobook_id

Client-supplied references use the ID type, which accepts both JSON numbers
and strings:

	{"user_id": 1, "audiobook_id": "2"}
*/
package models
