/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePollRequest: title, description, options, expires_at
  - CastVoteRequest: selected_option (pointer, so a missing field is an
    error rather than a vote for option 0)

# Response Types

Types for JSON responses:

  - PollTallyResponse: poll, counts, percentages, total_votes, user_vote
  - CastVoteResponse: vote_id, message
  - ListActivePollsResponse: polls with humanized expiry
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Poll: metadata, ordered options, lifecycle state, optional expiry
  - Vote: one member's immutable option choice (user_id never serialized)
  - PollWithTally: service-level read model for a single poll

# Constants

Status values:

	StatusActive = "active"
	StatusClosed = "closed"
*/
package models
