// Package routeconfig loads route tables from YAML.
//
//	aliases:
//	  articles: artikel
//	routes:
//	  - name: article
//	    path: /articles/{page}
//	    method: [GET, HEAD]
//	    format: json|xml
//	    default_format: json
//	    rules:
//	      page: "[0-9]+"
//	    defaults:
//	      page: "1"
//	    controller:
//	      target: articles
//	      method: list
//
// Routes and aliases keep file order. Config.Build produces the
// routing.Collection and routing.Aliases used by a routing.Finder.
package routeconfig
