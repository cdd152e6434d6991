// Package main provides the entry point for the LinkDeck application.
// It runs a web server using the Fiber framework that serves a personal
// link-in-bio landing page, a split-screen admin editor for its settings
// document, an image upload endpoint and a visit counter. The settings
// document persists behind a pluggable store (JSON file, redis key or
// relational row via gorm).
package main
