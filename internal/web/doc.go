// Package web serves the browsing pages. Each handler binds a fetch
// resource to the service layer, loads it for the request, and renders
// the resulting snapshot with an embedded template. Pages degrade
// rather than fail: a backend outage renders empty sections or an
// inline error message, never a blank 500.
package web
