/*
The guide package boots a switchback app.

A Guide assembles the route table, the dispatch App, and the web server
from environment-variable-derived defaults and functional options,
bridges net/http traffic onto the App,
and manages graceful startup and shutdown.

An app looks like this:

	g, err := guide.New()
	if err != nil {
		log.Fatal(err)
	}

	g.Handle(router.Route{
		Method: message.MethodGet,
		Path:   "/hello/{name}",
		Handler: middleware.ResponderFunc(func(r *message.Request) (*message.Response, error) {
			return message.Text(http.StatusOK, "hello, "+r.Params["name"]), nil
		}),
	})
	g.OnEveryRequest(middleware.RequestID(switchback.RequestIDKey))

	log.Fatal(g.Lead())
*/
package guide
