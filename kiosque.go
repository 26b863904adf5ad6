// Package kiosque turns newspaper and magazine articles into portable
// markdown documents. It resolves a URL or short alias to a per-publication
// site handler, performs that site's authentication handshake when
// credentials are configured, extracts and cleans the article body according
// to the handler's rules, and renders a document with a metadata header.
// A secondary path downloads a publication's latest PDF issue.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., site/, http/,
// htmltomarkdown/, raindrop/).
package kiosque
