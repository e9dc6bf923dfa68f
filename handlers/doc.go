// Package handlers provides middleware for the dispatch package.
//
// Route-aware middleware reads the matched route from the request context
// and is therefore added with Dispatcher.Use:
//
//	d.Use(
//	    handlers.RequestIDMiddleware(handlers.RequestIDConfig{}),
//	    handlers.RecoveryMiddleware(handlers.RecoveryConfig{Logger: logger}),
//	    handlers.CacheControlMiddleware(handlers.CacheControlConfig{}),
//	)
//
//	session, err := handlers.SessionMiddleware(handlers.SessionConfig{
//	    HasSession: func(r *http.Request) bool {
//	        _, err := r.Cookie("session")
//	        return err == nil
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d.Use(session)
//
// MethodOverrideMiddleware changes the request method and must run before
// the route is selected, so it wraps the Dispatcher instead.
package handlers
