package egraph

// Version is the current library version, printed by the CLI.
const Version = "0.1.0"
