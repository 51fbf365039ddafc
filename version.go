package togglewalk

// Version is the release of the library and the togglewalk binary.
const Version = "0.3.0"
