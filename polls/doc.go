/*
Package polls implements the poll lifecycle and vote casting/tallying
service.

# Service

Service wraps a *sql.DB and exposes the five operations:

	svc := polls.NewService(db)
	poll, err := svc.Create(ctx, polls.CreatePollInput{...})
	err = svc.Close(ctx, pollID)
	err = svc.Reopen(ctx, pollID)
	vote, err := svc.CastVote(ctx, pollID, userID, selectedOption)
	tally, err := svc.GetWithTally(ctx, pollID, userID)
	active, err := svc.ListActive(ctx)

# Poll Lifecycle

Polls have exactly two stored states, active and closed:

	active --Close--> closed
	active --expiry elapsed--> closed   (computed at read/vote time)
	closed --Reopen--> active

Close and Reopen are idempotent. Expiry never rewrites the stored status;
effective status is evaluated on every read and vote.

# Vote Casting

CastVote checks its preconditions in a fixed order, each with a distinct
error: ErrNotFound, ErrPollClosed, ErrValidation (bad index), ErrAlreadyVoted.
The existing-vote pre-check is only an early exit. Two concurrent casts from
the same user race past it; the store's UNIQUE (poll_id, user_id) constraint
decides the winner and the loser's constraint violation is translated to
ErrAlreadyVoted, never surfaced as a generic failure.

# Tally

Tallies are derived, never stored: GetWithTally groups the vote table by
selected_option on each read. Percentages round half-up per option and are
not renormalized, so they may not sum to exactly 100. Tally reads are not
linearizable with concurrent writes; callers get eventual visibility.

# Errors

Errors are matched with errors.Is:

	if errors.Is(err, polls.ErrAlreadyVoted) { ... }

Anything not in the taxonomy is a wrapped store failure.
*/
package polls
