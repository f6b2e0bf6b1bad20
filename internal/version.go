package internal

// Version is the csvlocalizer release, overridden at build time with
// -ldflags "-X codeberg.org/snonux/csvlocalizer/internal.Version=..."
var Version = "0.3.0"
