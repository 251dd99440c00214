package httputil

// ContextUser is the gin context key the user identity middleware
// stores the requester's ID under.
const ContextUser = "weekly-envelope-user"

// ContextURL is the gin context key the URL middleware stores the API
// base URL under. Handlers use it to build absolute links.
const ContextURL = "weekly-envelope-url"
