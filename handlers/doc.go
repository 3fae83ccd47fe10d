/*
Package handlers contains HTTP request handlers for the poll API.

# Handler Types

Each handler is a struct wrapping the poll service and config:

  - PollHandler: Back-office lifecycle (create, close, reopen)
  - VotingHandler: Vote casting
  - ResultsHandler: Poll retrieval with live tally, active listing

Handlers are created via constructor functions:

	pollHandler := handlers.NewPollHandler(svc, cfg)

# Endpoints

Admin operations require the X-Admin-Token header:

	POST /polls              → CreatePoll
	POST /polls/{id}/close   → ClosePoll (idempotent)
	POST /polls/{id}/reopen  → ReopenPoll (idempotent)

Member operations require an Authorization bearer token:

	GET  /polls/{id}         → GetPoll (tally + caller's own vote)
	POST /polls/{id}/votes   → CastVote

Public:

	GET /polls               → ListActivePolls

# Error Mapping

Service errors translate to status codes: validation 400, unknown poll 404,
closed poll 409, duplicate vote 409, anything else 500. The two 409s carry
distinct messages so the frontend can disable controls for a duplicate vote
but show a "voting has ended" state for a closed poll.
*/
package handlers
