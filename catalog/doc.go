// Package catalog is a client for the Product Advertising API. Each call
// builds a canonical JSON payload from typed request parameters and
// account-level defaults, signs it with Signature Version 4, and issues a
// single HTTP POST to the configured marketplace endpoint.
//
// # Usage
//
//	client, err := catalog.NewClient(catalog.Config{
//	    AccessKey:   os.Getenv("PAAPI_ACCESS_KEY"),
//	    SecretKey:   os.Getenv("PAAPI_SECRET_KEY"),
//	    PartnerTag:  "mytag-20",
//	    Marketplace: "us",
//	    Resources:   []string{"ItemInfo.Title", "Offers.Listings.Price"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.GetItems(ctx, catalog.GetItemsRequest{
//	    ItemIDs: []string{"B000123456"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if result.OK() {
//	    fmt.Println(string(result.Body))
//	}
//
// The client does not interpret the remote response: Result carries the
// raw status, headers, and body, and transport-level errors are returned
// to the caller unmodified. There is no retry or backoff.
//
// # Resource Defaults
//
// The Resources list configured on the client is merged into every
// payload. A request that supplies its own Resources list replaces the
// client default for that call and all later calls on the same client;
// the current value is readable through Client.Resources. The replacement
// is guarded by a mutex, so concurrent calls observe a consistent list.
package catalog
