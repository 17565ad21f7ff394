package main

// Version is set via -ldflags "-X main.Version=..." at release build time.
var Version = "dev"
