/*
Package auth handles identity for the poll API.

# Member Identity

Members authenticate with HS256 JWTs carrying a user_id claim:

	token, err := auth.GenerateUserToken("user-123", secret, 72*time.Hour)
	userID, err := auth.ParseUserToken(token, secret)

Tokens are minted by the surrounding site's login flow; this service only
needs to verify them and extract the identity, which is passed explicitly
into every poll operation.

# Admin Identity

Back-office requests carry a single shared admin token in the X-Admin-Token
header, compared in constant time:

	if err := auth.ValidateAdminToken(provided, cfg.AdminToken); err != nil { ... }
*/
package auth
