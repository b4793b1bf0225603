// Package github implements a DocumentFetcher for documents stored in
// GitHub repositories.
//
// # Locators
//
// Documents are addressed with github:// locators:
//
//	github://owner/repo/<path>?ref=<branch, tag or SHA>
//	github://owner/repo/<path>
//
// Without ref the repository's default branch is read. Every segment after
// the repository is part of the path, so a directory named "blob" needs no
// special handling. Path segments may be percent-encoded (e.g. %20 for
// spaces).
//
// # Authentication
//
// None. Only public repositories are supported, through the unauthenticated
// contents API (60 requests per hour per client IP).
//
// # Rate Limiting
//
// The client implements a dual-strategy rate limiting approach:
//
//  1. Proactive throttling: a token bucket limits requests to roughly one
//     per second with a small burst.
//
//  2. Reactive handling: the client monitors X-RateLimit-Remaining and
//     X-RateLimit-Reset headers. When limits are exhausted, it waits until
//     the reset time (or until the request context is done).
//
// # Large Files
//
// The contents API inlines files up to 1 MB. Larger files are returned
// without content and are downloaded from their download_url instead.
// Both are capped at the fetcher's byte limit.
package github
