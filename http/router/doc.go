/*
The router package maps inbound requests to the handlers registered for them.

The dispatcher treats the route table as an opaque capability:
register Routes during boot, ask for a match per request.
*/
package router
