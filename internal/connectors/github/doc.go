// Package github implements the search transport on top of the GitHub REST API.
//
// The Client satisfies [driven.Transport] and [driven.RateLimitReporter]. It
// issues GET requests for absolute search URLs built by the core and hands
// back the raw JSON body together with the "next" link from the Link header,
// so pagination stays an explicit value owned by the caller.
//
// # Authentication
//
// A token is optional. Without one GitHub allows 10 search requests per
// minute; with a personal access token the limit is 30 per minute. Tokens are
// attached through an oauth2 static token source.
//
// # Rate Limiting
//
// Two mechanisms apply:
//
//  1. Proactive throttling: a token bucket limits the request rate
//     (0.5 requests per second by default, matching the authenticated
//     search limit).
//
//  2. Fail fast: X-RateLimit-Remaining and X-RateLimit-Reset are tracked
//     from every search response. When the quota is exhausted before its
//     reset time, the next request returns a [RateLimitError] without
//     touching the network. Nothing is retried automatically.
//
// # Errors
//
// go-github errors are mapped to [APIError] and [RateLimitError]. Both unwrap
// to domain sentinels ([domain.ErrAPIFailure], [domain.ErrRateLimited]) so the
// CLI can choose an exit code without importing this package.
//
// # Example Usage
//
//	client, err := github.NewClient(ctx, github.Options{Token: token})
//	if err != nil {
//	    return err
//	}
//	resp, err := client.Get(ctx, "https://api.github.com/search/repositories?q=...")
package github
