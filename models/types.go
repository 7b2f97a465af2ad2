// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
)

// Request types

type CreateUserRequest struct {
	Username string `json:"username"`
}

type CreateAudioBookRequest struct {
	Title      string `json:"title"`
	Author     string `json:"author"`
	CoverImage string `json:"cover_image"`
}

type CastVoteRequest struct {
	UserID      ID `json:"user_id"`
	AudioBookID ID `json:"audiobook_id"`
}

// ListAudioBooksRequest is bound from the query string only.
// HasUserID distinguishes ?user_id= (no votes marked) from no parameter at all.
type ListAudioBooksRequest struct {
	UserID    ID
	HasUserID bool
}

// Response types

// ExistingUserResponse is returned when POST /users finds the username already taken.
type ExistingUserResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

type CastVoteResponse struct {
	Message string `json:"message"`
	Vote    Vote   `json:"vote"`
}

// Domain types

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type AudioBook struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Author     string  `json:"author"`
	CoverImage *string `json:"cover_image"`
}

// AudioBookWithVotes is one row of the vote aggregation.
type AudioBookWithVotes struct {
	AudioBook
	VoteCount int  `json:"vote_count"`
	UserVoted bool `json:"user_voted"`
}

type Vote struct {
	ID          int64 `json:"id"`
	UserID      int64 `json:"user_id"`
	AudioBookID int64 `json:"audiobook_id"`
}

// ID is an entity reference as sent by clients. JSON numbers and strings are
// both accepted; form values are taken verbatim.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a number or string: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Field   string `json:"field,omitempty"`
}

// Validation

// MissingParameterError reports a required request field that was absent or empty.
type MissingParameterError struct {
	Field string
}

func (e *MissingParameterError) Error() string {
	return e.Field + " is required"
}

func missing(field string) error {
	return &MissingParameterError{Field: field}
}

func (r *CreateUserRequest) BindForm(v url.Values) {
	r.Username = v.Get("username")
}

func (r CreateUserRequest) Validate() error {
	if r.Username == "" {
		return missing("username")
	}
	return nil
}

func (r *CreateAudioBookRequest) BindForm(v url.Values) {
	r.Title = v.Get("title")
	r.Author = v.Get("author")
	r.CoverImage = v.Get("cover_image")
}

func (r CreateAudioBookRequest) Validate() error {
	switch {
	case r.Title == "":
		return missing("title")
	case r.Author == "":
		return missing("author")
	case r.CoverImage == "":
		return missing("cover_image")
	}
	return nil
}

func (r *CastVoteRequest) BindForm(v url.Values) {
	r.UserID = ID(v.Get("user_id"))
	r.AudioBookID = ID(v.Get("audiobook_id"))
}

func (r CastVoteRequest) Validate() error {
	if r.UserID == "" {
		return missing("user_id")
	}
	if r.AudioBookID == "" {
		return missing("audiobook_id")
	}
	return nil
}

func (r *ListAudioBooksRequest) BindForm(v url.Values) {
	r.HasUserID = v.Has("user_id")
	r.UserID = ID(v.Get("user_id"))
}

func (r ListAudioBooksRequest) Validate() error {
	if !r.HasUserID {
		return missing("user_id")
	}
	return nil
}
