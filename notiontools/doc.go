// Package notiontools declares the Notion MCP tools as typed Go calls.
//
// Each tool is a Def: a name, a description and a typed argument struct whose
// JSON Schema is reflected with invopop/jsonschema. A Def describes a call; it
// never performs one. Execution is delegated to a Caller supplied by the host
// (see package mcpclient for an adapter over the official MCP go-sdk client).
//
// The tool groups (DatabaseTools, PageTools, SearchTools, UserTools) are thin
// forwarding wrappers: they validate arguments, build a CallToolRequest and
// hand it to the Caller. They hold no state beyond that Caller.
//
// # Extension points
//
// Retry, rate limiting and result caching are the host's business. Middleware
// and the Retrier, Limiter and Cache interfaces let a host plug its own
// policies into the call path; this package ships no policy of its own.
//
//	caller := notiontools.Chain(session,
//		notiontools.WithLogging(log),
//		notiontools.WithRateLimit(rate.NewLimiter(3, 1)),
//	)
//	tools := notiontools.New(caller)
//	res, err := tools.Search.Search(ctx, notiontools.SearchArgs{Query: "roadmap"})
package notiontools
