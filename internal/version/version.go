package version

// Version is the semantic version of the rynko-go SDK and CLI. It is
// reported in the User-Agent header on every API request.
const Version = "1.0.0"
