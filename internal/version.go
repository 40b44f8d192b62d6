package internal

// Version is the spellbee release version
const Version = "0.3.1"
