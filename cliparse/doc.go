/*
Package cliparse handles configuration from CLI flags and environment
variables.

CLI flags take precedence over environment variables:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Required: DATABASE_URL (-d), JWT_SECRET (--jwt-secret), ADMIN_TOKEN
(--admin-token). Optional: PORT (-p, default 4170), DATABASE_TYPE (-t,
default sqlite), REDIS_ADDR (--redis), VOTE_RATE_LIMIT (--vote-limit,
default 30 per day).

Secrets should come from the environment in production; the flags exist for
local development.
*/
package cliparse
