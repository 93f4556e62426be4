package switchback

// Version is the released version of switchback,
// advertised in the "Server" header of every response.
const Version = "0.1.0"
