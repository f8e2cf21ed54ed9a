// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the batch lifecycle that drives each part
// record through the label pipeline, decoupled from any specific entrypoint.
package app
