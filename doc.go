/*
Package main provides the entry point for the TYPNI polls API server.

The service owns the community site's poll voting and tallying: poll
lifecycle (create, close, reopen, implicit expiry), one immutable vote per
member per poll, and live tallies computed on read.

# Starting the Server

The server reads configuration from a .env file, environment variables, or
CLI flags:

	DATABASE_URL=file:typni.db JWT_SECRET=... ADMIN_TOKEN=... go run main.go

Or with flags:

	go run main.go -p 4170 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string or SQLite file
  - JWT_SECRET (--jwt-secret): Secret for member bearer tokens
  - ADMIN_TOKEN (--admin-token): Back-office token for poll lifecycle

Optional settings:

  - PORT (-p): Server port (default: 4170)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - REDIS_ADDR (--redis): Enables per-user vote rate limiting
  - VOTE_RATE_LIMIT (--vote-limit): Casts per user per day (default: 30)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - polls: The poll service (lifecycle, vote casting, tally)
  - handlers: HTTP request handlers over the service
  - router: Route definitions using Go 1.22+ routing
  - middleware: Auth, rate limiting, CORS, logging, JSON helpers
  - models: Request/response and domain types
  - auth: Member JWT and admin token validation
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
