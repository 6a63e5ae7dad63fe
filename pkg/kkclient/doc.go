// Package kkclient provides the main entry point for creating Karakeep
// API clients.
package kkclient
