// Package mcp contains the slice of Model Context Protocol wire types that the
// Notion tool layer speaks: tool descriptors with their simplified JSON
// schemas, tool call requests and tool call results.
//
// The package is free of transport logic. Executing a request is the job of
// whatever host runtime the caller injects (see package mcpclient for an
// adapter over the official go-sdk client); this package only fixes the shape
// of what goes over the wire.
//
// # Method Names
//
// The JSON-RPC method names used by tool traffic are enumerated as Method
// constants so that hosts routing raw frames can match on them without
// string literals.
package mcp
