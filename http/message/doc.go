/*
The message package defines the Request and Response values
exchanged between the transport layer and a switchback app.
*/
package message
