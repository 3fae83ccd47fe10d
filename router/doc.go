/*
Package router defines the HTTP routes for the poll API.

Routes use Go 1.22+ method patterns on the standard ServeMux:

	mux := router.NewRouter(svc, cfg, rdb)

Back-office routes are wrapped in the admin middleware, member routes in the
JWT middleware, and vote casting additionally in the Redis rate limiter
(skipped when no Redis client is configured). Every route logs through the
logging middleware, and the whole mux sits behind the CORS middleware so
preflight requests from the browser frontend succeed.
*/
package router
