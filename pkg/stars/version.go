package stars

// Version is the shootingstars release version.
const Version = "0.1.0"
