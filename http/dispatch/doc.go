/*
The dispatch package orchestrates the per-request pipeline of a switchback app.

An App resolves a terminal responder through its route table,
falls back to static-file serving, wraps execution in the registered
middleware chain, and normalizes every outcome - success, no match,
or failure - into a well-formed Response.
*/
package dispatch
