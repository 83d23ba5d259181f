// Package marketplace maps Product Advertising API marketplace identifiers
// to their regional endpoint data: signing region, API host, and the site
// identifier carried in every request payload.
//
// A Registry starts out seeded with the built-in table of known
// marketplaces:
//
//	reg := marketplace.NewRegistry()
//	mk, err := reg.Lookup("us")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	url := mk.EndpointURL("GetItems") // https://webservices.amazon.com/paapi5/getitems
//
// Custom or sandbox endpoints can be layered on top from YAML:
//
//	reg, err := marketplace.LoadFile("marketplaces.yml")
//
// with a document of the form:
//
//	marketplaces:
//	  - id: us
//	    region: us-east-1
//	    host: webservices.amazon.com
//	    site: www.amazon.com
//
// Entries parsed from YAML replace built-in entries with the same id.
package marketplace
