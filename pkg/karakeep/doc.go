// Package karakeep defines the public surface of the Karakeep API client:
// the Client interface and its per-resource sub-clients, the resource
// types exchanged with the service, the error taxonomy, query options,
// cursor pagination helpers, and URL validation utilities.
//
// Construct a client with the kkclient package:
//
//	client, err := kkclient.New(&karakeep.Config{
//		APIKey:  "sk-...",
//		BaseURL: "https://keep.example.com",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	page, err := client.Bookmarks().List(ctx, nil)
//
// All resource types carry two sets of struct tags: json tags use the
// wire naming convention (camelCase, what the service sends and expects),
// yaml tags use snake_case for human-facing output. Serialization
// defaults to the wire convention.
//
// Errors returned by operations fall into a small taxonomy: sentinel
// errors for local argument validation (checked before any network call),
// *APIError for non-2xx responses and network failures,
// *AuthenticationError for 401s, and *SchemaError when a response body
// does not match the expected resource shape. See errors.go for the
// errors.As/errors.Is predicates.
package karakeep
